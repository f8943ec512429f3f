package catalog

import "github.com/shouni/hairfit-kit/pkg/domain"

var hairStyles = []domain.HairStyle{
	{
		ID: "w7", Name: "Short Layered Cut", NameKo: "단발 레이어드컷",
		Description: "Short bob with layered textures falling around the jawline with natural movement",
		Gender:      domain.GenderFemale, Category: domain.CategoryCut,
		ImagePath: "/styles/w7-short-layered.png", Tags: []string{"short", "layered", "bob"},
	},
	{
		ID: "w8", Name: "Tassel Cut", NameKo: "태슬컷",
		Description: "Thin, wispy see-through ends with delicate tassel-like tips and airy bangs",
		Gender:      domain.GenderFemale, Category: domain.CategoryCut,
		ImagePath: "/styles/w8-tassel-cut.png", Tags: []string{"medium", "see-through", "light"},
	},
	{
		ID: "w9", Name: "Volume Cut", NameKo: "볼륨커트",
		Description: "Abundant volume with bouncy layers, full and thick with lots of body",
		Gender:      domain.GenderFemale, Category: domain.CategoryCut,
		ImagePath: "/styles/w9-volume-cut.png", Tags: []string{"medium", "volume", "layered"},
	},
	{
		ID: "w10", Name: "Bob Cut", NameKo: "보브컷",
		Description: "Classic clean bob at jawline length with a straight, sleek bottom line",
		Gender:      domain.GenderFemale, Category: domain.CategoryCut,
		ImagePath: "/styles/w10-bob-cut.png", Tags: []string{"bob", "short", "sleek"},
	},
	{
		ID: "w11", Name: "Layered Perm", NameKo: "레이어드펌",
		Description: "Layers with natural flowing waves at different lengths",
		Gender:      domain.GenderFemale, Category: domain.CategoryPerm,
		ImagePath: "/styles/w11-layered-perm.png", Tags: []string{"long", "waves", "layered"},
	},
	{
		ID: "w12", Name: "Elizabeth Perm", NameKo: "엘리자벳펌",
		Description: "Big glamorous S-shaped curls reminiscent of classic Hollywood waves",
		Gender:      domain.GenderFemale, Category: domain.CategoryPerm,
		ImagePath: "/styles/w12-elizabeth-perm.png", Tags: []string{"long", "curls", "glamorous"},
	},
	{
		ID: "w13", Name: "Jelly Perm", NameKo: "젤리펌",
		Description: "Tight, springy small curls that look elastic and defined",
		Gender:      domain.GenderFemale, Category: domain.CategoryPerm,
		ImagePath: "/styles/w13-jelly-perm.png", Tags: []string{"medium", "curls", "cute"},
	},
	{
		ID: "w14", Name: "Balloon Perm", NameKo: "발롱펌",
		Description: "Round balloon-like volume with soft bouncy curls that make the face look smaller",
		Gender:      domain.GenderFemale, Category: domain.CategoryPerm,
		ImagePath: "/styles/w14-ballong-perm.png", Tags: []string{"medium", "volume", "round"},
	},
	{
		ID: "m7", Name: "Gail Cut", NameKo: "가일컷",
		Description: "Short faded sides with a longer textured top swept to one side",
		Gender:      domain.GenderMale, Category: domain.CategoryCut,
		ImagePath: "/styles/m7-gail-cut.png", Tags: []string{"short", "side-part", "fade"},
	},
	{
		ID: "m8", Name: "See-through Cut", NameKo: "시스루컷",
		Description: "Thin wispy see-through bangs with a short, neat overall shape",
		Gender:      domain.GenderMale, Category: domain.CategoryCut,
		ImagePath: "/styles/m8-seethrough-cut.png", Tags: []string{"short", "bangs", "natural"},
	},
	{
		ID: "m9", Name: "Gail Perm", NameKo: "가일펌",
		Description: "Gail cut structure with soft permed waves on the swept top",
		Gender:      domain.GenderMale, Category: domain.CategoryPerm,
		ImagePath: "/styles/m9-gail-perm.png", Tags: []string{"short", "waves", "side-part"},
	},
	{
		ID: "m10", Name: "See-through Perm", NameKo: "시스루펌",
		Description: "See-through bangs with gentle waves through the bangs and top",
		Gender:      domain.GenderMale, Category: domain.CategoryPerm,
		ImagePath: "/styles/m10-seethrough-perm.png", Tags: []string{"bangs", "waves", "soft"},
	},
	{
		ID: "m11", Name: "Garma Perm", NameKo: "가르마펌",
		Description: "Parted hair flowing to both sides with gentle S-wave curves",
		Gender:      domain.GenderMale, Category: domain.CategoryPerm,
		ImagePath: "/styles/m11-garma-perm.png", Tags: []string{"parted", "s-wave", "business"},
	},
}

var hairColors = []domain.HairColor{
	{ID: "natural", Name: "Keep Original", NameKo: "염색 안함", ColorHex: "#888888", Category: domain.ColorNatural,
		Description: "Keep the original hair color exactly as it is. Do not change hair color."},
	{ID: "natural-black", Name: "Natural Black", NameKo: "자연 흑발", ColorHex: "#1a1a1a", Category: domain.ColorNatural,
		Description: "Deep natural black hair, glossy and healthy-looking with subtle dark brown undertones in light."},
	{ID: "dark-brown", Name: "Dark Brown", NameKo: "다크 브라운", ColorHex: "#3b2214", Category: domain.ColorNatural,
		Description: "Rich dark brown hair color, warm chocolate tone with natural depth."},
	{ID: "chestnut-brown", Name: "Chestnut Brown", NameKo: "체스트넛 브라운", ColorHex: "#6b3a2a", Category: domain.ColorBrown,
		Description: "Warm chestnut brown with reddish undertones, like autumn leaves. Rich and vibrant."},
	{ID: "caramel-brown", Name: "Caramel Brown", NameKo: "카라멜 브라운", ColorHex: "#a0682c", Category: domain.ColorBrown,
		Description: "Warm golden caramel brown, honey-toned highlights through mid-lengths, sun-kissed look."},
	{ID: "milk-brown", Name: "Milk Brown", NameKo: "밀크 브라운", ColorHex: "#c4956a", Category: domain.ColorBrown,
		Description: "Soft milky light brown, creamy and warm. A trendy Korean hair color with gentle beige undertones."},
	{ID: "rose-brown", Name: "Rose Brown", NameKo: "로즈 브라운", ColorHex: "#8b5e5e", Category: domain.ColorBrown,
		Description: "Brown base with soft pink-rose undertones. Romantic and feminine, subtle pinkish sheen."},
	{ID: "ash-brown", Name: "Ash Brown", NameKo: "애쉬 브라운", ColorHex: "#7a7062", Category: domain.ColorAsh,
		Description: "Cool-toned muted brown with grey ash undertones. Sophisticated and modern, no warm/red tones."},
	{ID: "ash-grey", Name: "Ash Grey", NameKo: "애쉬 그레이", ColorHex: "#9e9e9e", Category: domain.ColorAsh,
		Description: "Cool silvery grey-brown tone. Trendy Korean ash grey with muted, smoky feel."},
	{ID: "ash-beige", Name: "Ash Beige", NameKo: "애쉬 베이지", ColorHex: "#c2b59b", Category: domain.ColorAsh,
		Description: "Light warm beige with soft ash undertone. Bright and airy, very popular K-beauty color."},
	{ID: "burgundy", Name: "Burgundy", NameKo: "버건디", ColorHex: "#722f37", Category: domain.ColorVivid,
		Description: "Deep wine-red burgundy. Rich and bold, elegant dark red with purple undertones."},
	{ID: "copper-orange", Name: "Copper Orange", NameKo: "카퍼 오렌지", ColorHex: "#c47030", Category: domain.ColorVivid,
		Description: "Warm vivid copper-orange tone. Bold and trendy, metallic warm orange sheen."},
	{ID: "pink-lavender", Name: "Pink Lavender", NameKo: "핑크 라벤더", ColorHex: "#c8a2c8", Category: domain.ColorVivid,
		Description: "Soft pastel pink-lavender blend. Dreamy and playful, light purple-pink with soft gradient."},
	{ID: "blue-black", Name: "Blue Black", NameKo: "블루 블랙", ColorHex: "#1c2331", Category: domain.ColorVivid,
		Description: "Deep black base with cool blue sheen that shows in light. Mysterious and sleek."},
	{ID: "face-framing-blonde", Name: "Face-framing Blonde", NameKo: "페이스라인 블론드", ColorHex: "#3b2214", ColorHex2: "#d4a76a", Category: domain.ColorHighlight,
		Description: "Dark brown base with bright blonde face-framing highlights (money pieces). Blonde streaks frame the face around temples and jawline."},
	{ID: "inner-color-pink", Name: "Inner Color Pink", NameKo: "이너컬러 핑크", ColorHex: "#3b2214", ColorHex2: "#e8839b", Category: domain.ColorHighlight,
		Description: "Dark brown on surface layer with hidden pink inner color underneath. The pink shows when hair moves or is tucked behind ears."},
}
