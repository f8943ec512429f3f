package domain

// Gender はスタイルの対象性別です。
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Valid は既知の性別かどうかを返します。
func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale
}

// Label はプロンプトに埋め込む表示名を返します。
func (g Gender) Label() string {
	if g == GenderMale {
		return "Male"
	}
	return "Female"
}

// StyleCategory はカット/パーマの区分です。
type StyleCategory string

const (
	CategoryCut  StyleCategory = "cut"
	CategoryPerm StyleCategory = "perm"
)

// Valid は既知のカテゴリかどうかを返します。
func (c StyleCategory) Valid() bool {
	return c == CategoryCut || c == CategoryPerm
}

// ColorCategory はカラーカタログの分類です。
type ColorCategory string

const (
	ColorNatural   ColorCategory = "natural"
	ColorBrown     ColorCategory = "brown"
	ColorAsh       ColorCategory = "ash"
	ColorVivid     ColorCategory = "vivid"
	ColorHighlight ColorCategory = "highlight"
)

// KeepOriginalColorID は「染めない」を表すカタログ上のセンチネルです。
const KeepOriginalColorID = "natural"

// HairStyle はスタイルカタログの1レコードです。
type HairStyle struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	NameKo      string        `json:"name_ko"`
	Description string        `json:"description"`
	Gender      Gender        `json:"gender"`
	Category    StyleCategory `json:"category"`
	ImagePath   string        `json:"image_path"`
	Tags        []string      `json:"tags"`
}

// Info は生成リクエストに添付する StyleInfo を作ります。
func (s HairStyle) Info() *StyleInfo {
	return &StyleInfo{
		Name:        s.Name,
		NameKo:      s.NameKo,
		Description: s.Description,
		Tags:        append([]string(nil), s.Tags...),
		Gender:      s.Gender,
	}
}

// HairColor はカラーカタログの1レコードです。
type HairColor struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	NameKo      string        `json:"name_ko"`
	ColorHex    string        `json:"color_hex"`
	ColorHex2   string        `json:"color_hex_second,omitempty"` // 2トーン用のグラデーション色
	Description string        `json:"description"`                // AI に渡す色の説明
	Category    ColorCategory `json:"category"`
}

// KeepsOriginal はセンチネル（染めない）かどうかを返します。
func (c HairColor) KeepsOriginal() bool {
	return c.ID == KeepOriginalColorID
}

// Info は生成リクエストに添付する ColorInfo を作ります。
// センチネルの場合は nil を返し、リクエストから色指定を省きます。
func (c HairColor) Info() *ColorInfo {
	if c.KeepsOriginal() {
		return nil
	}
	return &ColorInfo{
		ID:          c.ID,
		Name:        c.Name,
		NameKo:      c.NameKo,
		Description: c.Description,
	}
}

// StyleInfo はプロンプトに埋め込むスタイル情報です。
type StyleInfo struct {
	Name        string
	NameKo      string
	Description string
	Tags        []string
	Gender      Gender
}

// ColorInfo はプロンプトに埋め込むカラー情報です。
type ColorInfo struct {
	ID          string
	Name        string
	NameKo      string
	Description string
}

// KeepsOriginal は ColorInfo がセンチネルを指しているかどうかを返します。
func (c *ColorInfo) KeepsOriginal() bool {
	return c == nil || c.ID == KeepOriginalColorID
}
