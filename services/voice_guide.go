package services

import (
	"context"
	"strings"

	"github.com/voiceorder/menu-api/models"
)

const (
	voiceGuideSampleSize = 3

	voiceGuideGreeting = "안녕하세요. 반갑습니다. 주문하고 싶은 메뉴가 있으시면 메뉴명을 말씀해주시고, 못 정하셨으면 '메뉴'라고 말해 주세요.\n\n"
	voiceGuideIntro    = "저희 매장에는 다음과 같은 메뉴가 있습니다:\n\n"
	voiceGuideClosing  = "\n주문하고 싶은 메뉴가 있으시면 메뉴명을 말씀해주세요."
)

type VoiceGuide struct {
	Categories  []models.Category   `json:"categories"`
	SampleMenus map[string][]string `json:"sample_menus"`
}

// VoiceGuideService builds the spoken menu introduction.
type VoiceGuideService struct {
	catalog *CatalogService
}

func NewVoiceGuideService(catalog *CatalogService) *VoiceGuideService {
	return &VoiceGuideService{catalog: catalog}
}

// Guide returns every category with up to three sample item names each,
// keyed by category display name.
func (s *VoiceGuideService) Guide(ctx context.Context) (*VoiceGuide, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	guide := &VoiceGuide{
		Categories:  categories,
		SampleMenus: make(map[string][]string, len(categories)),
	}
	for _, category := range categories {
		names, err := s.sampleNames(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		guide.SampleMenus[category.DisplayName] = names
	}
	return guide, nil
}

// Text renders the guide as a single sentence block for text-to-speech.
func (s *VoiceGuideService) Text(ctx context.Context) (string, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(voiceGuideGreeting)
	b.WriteString(voiceGuideIntro)

	for _, category := range categories {
		names, err := s.sampleNames(ctx, category.ID)
		if err != nil {
			return "", err
		}

		b.WriteString("• ")
		b.WriteString(category.DisplayName)
		b.WriteString(" 탭을 누르시면 ")
		if len(names) > 0 {
			b.WriteString(strings.Join(names, ", "))
			b.WriteString(" 등의 메뉴가 있습니다.\n")
		} else {
			b.WriteString("다양한 메뉴가 있습니다.\n")
		}
	}

	b.WriteString(voiceGuideClosing)
	return b.String(), nil
}

func (s *VoiceGuideService) sampleNames(ctx context.Context, categoryID uint) ([]string, error) {
	items, err := s.catalog.ListMenuItems(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(items) > voiceGuideSampleSize {
		items = items[:voiceGuideSampleSize]
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}
