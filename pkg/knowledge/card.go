// Package knowledge holds the built-in knowledge cards and the carousel
// cursor used to browse them.
package knowledge

import "fmt"

const (
	// CategoryDaily is the implicit "all cards, favorites first" category.
	CategoryDaily      = "每日推荐"
	CategoryPsychology = "心理学"
	CategoryEfficiency = "效率"
	CategoryEmotion    = "情绪管理"
)

// Categories lists the browsable categories in display order.
func Categories() []string {
	return []string{CategoryDaily, CategoryPsychology, CategoryEfficiency, CategoryEmotion}
}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c string) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Card is a short piece of educational content. IsFavorite is the only field
// a user can change.
type Card struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author,omitempty"`
	Category   string `json:"category"`
	IsFavorite bool   `json:"isFavorite"`
	Position   int    `json:"position"`
}

func (c Card) String() string {
	if c.Author == "" {
		return c.Title
	}
	return fmt.Sprintf("%s (%s)", c.Title, c.Author)
}

// Seed returns the built-in card set with ids from newID.
func Seed(newID func() string) []Card {
	cards := []Card{
		{
			Title:    "成长型思维",
			Content:  "相信能力可以通过努力和学习不断发展的人，更容易获得成功。这种思维模式让我们把挑战视为成长的机会，把失败看作学习的过程。",
			Author:   "卡罗尔·德韦克",
			Category: CategoryPsychology,
		},
		{
			Title:    "心流状态",
			Content:  "当你全身心投入一项活动，忘记时间的流逝，这就是心流状态。找到能让你进入心流的事情，是提升幸福感的关键。",
			Author:   "米哈里·契克森米哈伊",
			Category: CategoryPsychology,
		},
		{
			Title:    "费曼学习法",
			Content:  "用最简单的语言向他人解释一个概念，如果你能做到，说明你真正理解了这个概念。教学相长，是最好的学习方式。",
			Category: CategoryEfficiency,
		},
		{
			Title:    "情绪颗粒度",
			Content:  "能够精确识别和命名自己情绪的人，更容易管理情绪。不要把所有负面情绪都称为\"难受\"，试着找到更准确的词汇。",
			Category: CategoryEmotion,
		},
		{
			Title:    "复利效应",
			Content:  "每天进步1%，一年后你会进步37倍。微小的改变，持续积累，会产生惊人的效果。不要低估时间的力量。",
			Category: CategoryEfficiency,
		},
		{
			Title:    "自我同情",
			Content:  "像对待好朋友一样对待自己。犯错时不要苛责，而是给予理解和支持。自我同情比自我批评更能带来改变。",
			Category: CategoryEmotion,
		},
		{
			Title:    "深度工作",
			Content:  "在无干扰的状态下专注进行职业活动，这种能力正在变得越来越稀缺，也因此变得越来越有价值。",
			Author:   "卡尔·纽波特",
			Category: CategoryEfficiency,
		},
		{
			Title:    "正念冥想",
			Content:  "专注于当下，不加评判地观察自己的思绪和感受。每天10分钟的正念练习，可以显著降低焦虑水平。",
			Category: CategoryEmotion,
		},
	}
	for i := range cards {
		cards[i].ID = newID()
		cards[i].Position = i
	}
	return cards
}
