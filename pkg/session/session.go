package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shouni/hairfit-kit/pkg/catalog"
	"github.com/shouni/hairfit-kit/pkg/domain"
	"github.com/shouni/hairfit-kit/pkg/generator"
	"github.com/shouni/hairfit-kit/pkg/imgutil"
)

const downloadPrefix = "hairfit-ai-"

// Options は Session の依存関係です。
type Options struct {
	Generator generator.ImageGenerator
	Loader    generator.ReferenceLoader
	Catalog   *catalog.Catalog
	Now       func() time.Time
}

// Session は1ユーザー分の HOME → PROCESSING → RESULT の状態機械です。
// 遷移はすべてメソッド経由で行い、PROCESSING 中は生成と選択の変更を受け付けません。
type Session struct {
	mu sync.Mutex

	gen     generator.ImageGenerator
	loader  generator.ReferenceLoader
	catalog *catalog.Catalog
	now     func() time.Time

	state      State
	gender     domain.Gender
	category   domain.StyleCategory
	userImage  string
	style      *domain.HairStyle
	styleImage string
	color      domain.HairColor
	result     string
	comment    string
	errMsg     string

	lastActivity time.Time
}

// New は HOME 状態の Session を作ります。
func New(opts Options) (*Session, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if opts.Loader == nil {
		return nil, fmt.Errorf("reference loader is required")
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		gen:      opts.Generator,
		loader:   opts.Loader,
		catalog:  cat,
		now:      now,
		state:    StateHome,
		gender:   domain.GenderFemale,
		category: domain.CategoryCut,
		color:    cat.DefaultColor(),
	}
	s.lastActivity = now()
	return s, nil
}

// View は UI に返す状態のスナップショットです。
type View struct {
	State         State                `json:"state"`
	Gender        domain.Gender        `json:"gender"`
	Category      domain.StyleCategory `json:"category"`
	HasUserImage  bool                 `json:"has_user_image"`
	UserImage     string               `json:"user_image,omitempty"`
	Style         *domain.HairStyle    `json:"style,omitempty"`
	HasStyleImage bool                 `json:"has_style_image"`
	Color         domain.HairColor     `json:"color"`
	Ready         bool                 `json:"ready"`
	ResultImage   string               `json:"result_image,omitempty"`
	Comment       string               `json:"comment,omitempty"`
	Error         string               `json:"error,omitempty"`
}

// Snapshot は現在の状態を返します。
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// State は現在の状態を返します。
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastActivity は最後に操作された時刻を返します。
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// SetUserImage はユーザー写真（data URI）を設定します。
func (s *Session) SetUserImage(image string) error {
	return s.mutateHome(func() error {
		s.userImage = image
		return nil
	})
}

// SetGender は性別タブを切り替えます。カテゴリはカットに戻り、スタイル選択は解除されます。
func (s *Session) SetGender(g domain.Gender) error {
	if !g.Valid() {
		return fmt.Errorf("%w: gender %q", ErrInvalidOption, g)
	}
	return s.mutateHome(func() error {
		s.gender = g
		s.category = domain.CategoryCut
		s.clearStyleLocked()
		return nil
	})
}

// SetCategory はカット/パーマを切り替え、スタイル選択を解除します。
func (s *Session) SetCategory(c domain.StyleCategory) error {
	if !c.Valid() {
		return fmt.Errorf("%w: category %q", ErrInvalidOption, c)
	}
	return s.mutateHome(func() error {
		s.category = c
		s.clearStyleLocked()
		return nil
	})
}

// SelectColor はカラーを選択します。
func (s *Session) SelectColor(id string) error {
	col, ok := s.catalog.Color(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColor, id)
	}
	return s.mutateHome(func() error {
		s.color = col
		return nil
	})
}

// SelectStyle はスタイルを選択し、その参照画像を読み込みます。
// 読み込みに失敗した場合はスタイルを選択したまま参照画像なしになり、エラーは返しません。
func (s *Session) SelectStyle(ctx context.Context, id string) error {
	style, ok := s.catalog.Style(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStyle, id)
	}

	if err := s.mutateHome(func() error {
		s.style = &style
		s.styleImage = ""
		return nil
	}); err != nil {
		return err
	}

	image, err := s.loader.LoadReference(ctx, style.ImagePath)
	if err != nil {
		slog.WarnContext(ctx, "参照画像を読み込めませんでした。スタイル未選択として扱います", "style", id, "error", err)
		image = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// 読み込み中に別のスタイルが選ばれた場合は反映しない
	if s.state == StateHome && s.style != nil && s.style.ID == id {
		s.styleImage = image
	}
	return nil
}

// Generate は HOME から合成を開始し、完了まで待ちます。
// 画像が揃っていなければ何もせず ErrNotReady を返します。
// 失敗した場合は HOME に戻り、固定のエラーメッセージを保持します（error は返しません）。
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateHome {
		s.mu.Unlock()
		return fmt.Errorf("%w: generate from %s", ErrInvalidState, s.state)
	}
	if s.userImage == "" || s.styleImage == "" {
		s.mu.Unlock()
		return ErrNotReady
	}

	req := domain.GenerationRequest{
		UserImage:      s.userImage,
		ReferenceImage: s.styleImage,
		Color:          s.color.Info(),
	}
	if s.style != nil {
		req.Style = s.style.Info()
	}

	s.state = StateProcessing
	s.errMsg = ""
	s.touchLocked()
	s.mu.Unlock()

	result, err := s.gen.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	if err != nil {
		slog.ErrorContext(ctx, "ヘアスタイル生成に失敗しました", "error", err)
		s.state = StateHome
		s.result = ""
		s.comment = ""
		s.errMsg = GenerationErrorMessage
		return nil
	}
	if result == nil {
		slog.ErrorContext(ctx, "ヘアスタイル生成の結果が空でした")
		s.state = StateHome
		s.result = ""
		s.comment = ""
		s.errMsg = GenerationErrorMessage
		return nil
	}

	s.result = result.Image
	s.comment = result.Comment
	s.state = StateResult
	return nil
}

// Reset はすべての選択と結果を破棄して HOME に戻ります。
// カラーは「染めない」に戻ります。性別とカテゴリのタブは維持します。
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateProcessing {
		return fmt.Errorf("%w: reset while processing", ErrInvalidState)
	}

	s.state = StateHome
	s.userImage = ""
	s.clearStyleLocked()
	s.color = s.catalog.DefaultColor()
	s.result = ""
	s.comment = ""
	s.errMsg = ""
	s.touchLocked()
	return nil
}

// Download は保存用の結果画像です。
type Download struct {
	FileName string
	MimeType string
	Data     []byte
}

// SaveResult は表示中の結果画像をダウンロード用に返します。
// サーバー側には何も保存しません。
func (s *Session) SaveResult() (*Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResult || s.result == "" {
		return nil, ErrNoResult
	}

	data, mimeType, err := imgutil.DecodeDataURI(s.result, imgutil.DefaultOutputMIME)
	if err != nil {
		return nil, err
	}
	return &Download{
		FileName: fmt.Sprintf("%s%d.%s", downloadPrefix, s.now().UnixMilli(), imgutil.ExtensionForMIME(mimeType)),
		MimeType: mimeType,
		Data:     data,
	}, nil
}

func (s *Session) mutateHome(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateHome {
		return fmt.Errorf("%w: selection in %s", ErrInvalidState, s.state)
	}
	s.touchLocked()
	return fn()
}

func (s *Session) clearStyleLocked() {
	s.style = nil
	s.styleImage = ""
}

func (s *Session) touchLocked() {
	s.lastActivity = s.now()
}

func (s *Session) viewLocked() View {
	v := View{
		State:         s.state,
		Gender:        s.gender,
		Category:      s.category,
		HasUserImage:  s.userImage != "",
		HasStyleImage: s.styleImage != "",
		Color:         s.color,
		Ready:         s.state == StateHome && s.userImage != "" && s.styleImage != "",
		Comment:       s.comment,
		Error:         s.errMsg,
	}
	if s.style != nil {
		st := *s.style
		v.Style = &st
	}
	if s.state == StateResult {
		v.UserImage = s.userImage
		v.ResultImage = s.result
	}
	return v
}
