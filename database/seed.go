package database

import (
	"github.com/voiceorder/menu-api/models"
	"github.com/voiceorder/menu-api/utils"
	"gorm.io/gorm"
)

type seedItem struct {
	name        string
	price       int
	description string
}

type seedCategory struct {
	name        string
	description string
	items       []seedItem
}

type seedOption struct {
	name       string
	price      int
	optionType models.OptionType
}

var catalogCategories = []seedCategory{
	{
		name:        "쌀국수",
		description: "신선한 쌀국수 메뉴",
		items: []seedItem{
			{"차돌양지쌀국수", 9900, "부드러운 차돌양지로 끓인 쌀국수"},
			{"한우쌀국수", 10900, "한우로 끓인 진한 쌀국수"},
			{"모듬 쌀국수", 11900, "다양한 고기가 들어간 쌀국수"},
		},
	},
	{
		name:        "돈카츠,카레",
		description: "바삭한 돈카츠와 진한 카레 메뉴",
		items: []seedItem{
			{"프리미엄 로스카츠(등심)", 11900, "등심으로 만든 프리미엄 돈카츠"},
			{"프리미엄 히레츠(안심)", 12900, "안심으로 만든 프리미엄 돈카츠"},
			{"통모짜치즈돈카츠", 12900, "통모짜렐라 치즈가 들어간 돈카츠"},
			{"시그니처 경양식돈카츠", 11900, "경양식 스타일의 시그니처 돈카츠"},
			{"모듬카츠A[등심+안심]", 13900, "등심과 안심이 함께 들어간 모듬카츠"},
			{"모듬카츠B[등심+치즈]", 13900, "등심과 치즈가 함께 들어간 모듬카츠"},
			{"등심카츠 카레라이스", 10900, "등심카츠와 카레라이스"},
			{"안심카츠 카레라이스", 12900, "안심카츠와 카레라이스"},
			{"통모짜치즈 카레라이스", 12900, "통모짜렐라 치즈 카레라이스"},
		},
	},
	{
		name:        "1인정식",
		description: "1인용 정식 메뉴",
		items: []seedItem{
			{"정식A(쌀국수S+경양식)", 11900, "쌀국수와 경양식이 함께"},
			{"정식B(쌀국수S+등심)", 10900, "쌀국수와 등심이 함께"},
			{"정식C(쌀국수S+안심)", 12900, "쌀국수와 안심이 함께"},
			{"정식D(쌀국수S+치즈)", 12900, "쌀국수와 치즈가 함께"},
		},
	},
	{
		name:        "사이드&추가메뉴",
		description: "사이드 메뉴와 추가 옵션",
	},
}

var catalogOptions = []seedOption{
	{"밥많이", 0, models.OptionTypeDonkatsu},
	{"공깃밥 추가", 1000, models.OptionTypeDonkatsu},
	{"레몬추가", 500, models.OptionTypeDonkatsu},
	{"트러플오일 추가 주문", 500, models.OptionTypeDonkatsu},
	{"쌀국수사이즈업", 3000, models.OptionTypeSetMeal},
	{"밥추가", 1000, models.OptionTypeSetMeal},
	{"고수추가", 500, models.OptionTypeSetMeal},
	{"레몬추가", 500, models.OptionTypeSetMeal},
	{"트러플오일 추가", 500, models.OptionTypeSetMeal},
}

// SeedCatalog fills an empty catalog with the restaurant's menu.
// It does nothing when categories already exist.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sc := range catalogCategories {
			desc := sc.description
			category := models.Category{
				Name:        sc.name,
				DisplayName: sc.name,
				Description: &desc,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}

			for _, si := range sc.items {
				itemDesc := si.description
				item := models.MenuItem{
					CategoryID:  category.ID,
					Name:        si.name,
					Price:       si.price,
					Description: &itemDesc,
					IsAvailable: true,
				}
				if err := tx.Omit("Category").Create(&item).Error; err != nil {
					return err
				}
			}
		}

		for _, so := range catalogOptions {
			option := models.Option{
				Name:        so.name,
				Price:       so.price,
				OptionType:  so.optionType,
				IsAvailable: true,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if utils.InfoLogger != nil {
		utils.InfoLogger.Printf("Seeded catalog: %d categories, %d options", len(catalogCategories), len(catalogOptions))
	}
	return nil
}
