package session

import "errors"

// State はアプリケーションの画面状態です。
type State string

const (
	StateHome       State = "HOME"
	StateProcessing State = "PROCESSING"
	StateResult     State = "RESULT"
)

// GenerationErrorMessage はユーザーに見せる固定のエラーメッセージです。
const GenerationErrorMessage = "헤어스타일 생성에 실패했습니다. 얼굴이 잘 보이는 사진으로 다시 시도해주세요."

var (
	// ErrNotReady はユーザー画像か参照画像が揃っていないことを表します。
	ErrNotReady = errors.New("user image and reference image are required")
	// ErrInvalidState は現在の状態では受け付けない操作を表します。
	ErrInvalidState = errors.New("operation not allowed in current state")
	// ErrNoResult は保存できる結果が無いことを表します。
	ErrNoResult = errors.New("no result to save")
	// ErrUnknownStyle / ErrUnknownColor はカタログに無い ID を表します。
	ErrUnknownStyle = errors.New("unknown style")
	ErrUnknownColor = errors.New("unknown color")
	// ErrInvalidOption は未知の性別やカテゴリを表します。
	ErrInvalidOption = errors.New("invalid option")
)
