package catalog

import "github.com/shouni/hairfit-kit/pkg/domain"

// Catalog は読み取り専用のスタイル/カラーカタログです。
// 返却するレコードはすべてコピーなので、呼び出し側が変更しても影響しません。
type Catalog struct {
	styles     []domain.HairStyle
	colors     []domain.HairColor
	styleIndex map[string]int
	colorIndex map[string]int
}

// New は与えられたレコードからカタログを構築します。
func New(styles []domain.HairStyle, colors []domain.HairColor) *Catalog {
	c := &Catalog{
		styles:     make([]domain.HairStyle, len(styles)),
		colors:     make([]domain.HairColor, len(colors)),
		styleIndex: make(map[string]int, len(styles)),
		colorIndex: make(map[string]int, len(colors)),
	}
	for i, s := range styles {
		c.styles[i] = cloneStyle(s)
		c.styleIndex[s.ID] = i
	}
	copy(c.colors, colors)
	for i, col := range colors {
		c.colorIndex[col.ID] = i
	}
	return c
}

// Default は組み込みカタログを返します。
func Default() *Catalog {
	return New(hairStyles, hairColors)
}

// Style は ID でスタイルを引きます。
func (c *Catalog) Style(id string) (domain.HairStyle, bool) {
	i, ok := c.styleIndex[id]
	if !ok {
		return domain.HairStyle{}, false
	}
	return cloneStyle(c.styles[i]), true
}

// Color は ID でカラーを引きます。
func (c *Catalog) Color(id string) (domain.HairColor, bool) {
	i, ok := c.colorIndex[id]
	if !ok {
		return domain.HairColor{}, false
	}
	return c.colors[i], true
}

// Styles は全スタイルをカタログ順で返します。
func (c *Catalog) Styles() []domain.HairStyle {
	out := make([]domain.HairStyle, 0, len(c.styles))
	for _, s := range c.styles {
		out = append(out, cloneStyle(s))
	}
	return out
}

// FilterStyles は性別とカテゴリで絞り込んだスタイルを返します。
func (c *Catalog) FilterStyles(gender domain.Gender, category domain.StyleCategory) []domain.HairStyle {
	var out []domain.HairStyle
	for _, s := range c.styles {
		if s.Gender == gender && s.Category == category {
			out = append(out, cloneStyle(s))
		}
	}
	return out
}

// Colors は全カラーをカタログ順で返します。
func (c *Catalog) Colors() []domain.HairColor {
	out := make([]domain.HairColor, len(c.colors))
	copy(out, c.colors)
	return out
}

// DefaultColor は「染めない」センチネルを返します。
// カタログにセンチネルが無い場合は ID だけを持つレコードを返します。
func (c *Catalog) DefaultColor() domain.HairColor {
	if col, ok := c.Color(domain.KeepOriginalColorID); ok {
		return col
	}
	return domain.HairColor{ID: domain.KeepOriginalColorID, Name: "Keep Original", Category: domain.ColorNatural}
}

func cloneStyle(s domain.HairStyle) domain.HairStyle {
	s.Tags = append([]string(nil), s.Tags...)
	return s
}
