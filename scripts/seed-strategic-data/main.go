// seed-strategic-data loads the 2024 strategic objectives, sub-objectives,
// risk categories, and their mappings into the reference tables.
//
// The data mirrors the committee's 2024 planning worksheet. Running the
// script twice inserts duplicates; truncate the reference tables first if
// a clean reload is needed.
//
// Usage: go run ./scripts/seed-strategic-data
//
// Database connection: uses standard PG* environment variables; a .env
// file in the working directory is honored when present.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/riskworks/erm-engine/pkg/config"
	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/repositories"
)

const seedYear = 2024

type objectiveSeed struct {
	name   string
	leader string
}

type subObjectiveSeed struct {
	objective string
	name      string
}

type categorySeed struct {
	name        string
	description string
}

type mappingSeed struct {
	objective    string
	subObjective string
	category     string
}

var objectiveSeeds = []objectiveSeed{
	{"永續發展ESG政策遵循", "人力資源部 李英豪(FRANCE)"},
	{"Margin Margin Margin x Profit Profit Profit", "採購資材群 吳宗庭(CHARLY)"},
	{"降低庫存水位", "產品行銷處 陳志瑋(IBSEN)"},
	{"營收目標400億+拓展通路與市占率", "採購資材群 吳宗庭(CHARLY)"},
	{"強化品牌價值(ADATA,XPG)", "品牌行銷處 劉怡君(JENNIE)"},
	{"專注產品項目(SSD+DRAM+EV+XPG+IA)", "產品研發群 戴子然(NICK)"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "產品研發群 戴子然(NICK)"},
	{"布局文化藝術", "運彩處 林天瓊(TAINCHIUNG)"},
}

var subObjectiveSeeds = []subObjectiveSeed{
	{"永續發展ESG政策遵循", "減碳"},
	{"永續發展ESG政策遵循", "資訊安全"},
	{"永續發展ESG政策遵循", "公司治理"},
	{"Margin Margin Margin x Profit Profit Profit", "達成預算營業利益"},
	{"降低庫存水位", "庫存水位降至16週"},
	{"營收目標400億+拓展通路與市占率", "營收目標400億"},
	{"強化品牌價值(ADATA,XPG)", "維持台灣前20大國際品牌"},
	{"強化品牌價值(ADATA,XPG)", "集團獎項每年5個以上;  產品獎項(ADATA/ XPG)每年30個以上"},
	{"專注產品項目(SSD+DRAM+EV+XPG+IA)", "既有產品定期更新Roadmap"},
	{"專注產品項目(SSD+DRAM+EV+XPG+IA)", "研發單位產出技術為導向的產品Roadmap(前瞻產品)"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "增加Enterprise及Embedded產品Roadmap"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "提升AI專業技能"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "切入碳權交易"},
	{"布局文化藝術", "黑膠音樂博物館試營運期間以一千人次參觀數為目標"},
}

var categorySeeds = []categorySeed{
	{"策略風險", "Strategic Risk"},
	{"營運風險", "Operational Risk"},
	{"財務風險", "Financial Risk"},
	{"新興風險", "Emerging Risk"},
}

var mappingSeeds = []mappingSeed{
	{"永續發展ESG政策遵循", "減碳", "營運風險"},
	{"永續發展ESG政策遵循", "資訊安全", "策略風險"},
	{"永續發展ESG政策遵循", "公司治理", "策略風險"},
	{"Margin Margin Margin x Profit Profit Profit", "達成預算營業利益", "財務風險"},
	{"降低庫存水位", "庫存水位降至16週", "營運風險"},
	{"營收目標400億+拓展通路與市占率", "營收目標400億", "策略風險"},
	{"強化品牌價值(ADATA,XPG)", "維持台灣前20大國際品牌", "策略風險"},
	{"強化品牌價值(ADATA,XPG)", "集團獎項每年5個以上;  產品獎項(ADATA/ XPG)每年30個以上", "策略風險"},
	{"專注產品項目(SSD+DRAM+EV+XPG+IA)", "既有產品定期更新Roadmap", "營運風險"},
	{"專注產品項目(SSD+DRAM+EV+XPG+IA)", "研發單位產出技術為導向的產品Roadmap(前瞻產品)", "營運風險"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "增加Enterprise及Embedded產品Roadmap", "新興風險"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "提升AI專業技能", "新興風險"},
	{"切入AI、生成式AI、AIOT、IOT、區塊鏈應用與碳權領域", "切入碳權交易", "新興風險"},
	{"布局文化藝術", "黑膠音樂博物館試營運期間以一千人次參觀數為目標", "策略風險"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("script")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: 5,
	})
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repositories.NewStrategicRepository(db)

	color.Cyan("Seeding %d strategic objectives...", len(objectiveSeeds))
	objectiveIDs := make(map[string]int, len(objectiveSeeds))
	for _, seed := range objectiveSeeds {
		objective := &models.StrategicObjective{
			Name:   seed.name,
			Leader: seed.leader,
			Year:   seedYear,
		}
		if err := repo.CreateObjective(ctx, objective); err != nil {
			color.Red("Failed to create objective %q: %v", seed.name, err)
			os.Exit(1)
		}
		objectiveIDs[seed.name] = objective.ID
	}

	color.Cyan("Seeding %d sub-strategic objectives...", len(subObjectiveSeeds))
	subObjectiveIDs := make(map[string]int, len(subObjectiveSeeds))
	for _, seed := range subObjectiveSeeds {
		parentID, ok := objectiveIDs[seed.objective]
		if !ok {
			color.Red("Unknown parent objective %q", seed.objective)
			os.Exit(1)
		}
		sub := &models.SubStrategicObjective{
			StrategicObjectiveID: parentID,
			Name:                 seed.name,
			Year:                 seedYear,
		}
		if err := repo.CreateSubObjective(ctx, sub); err != nil {
			color.Red("Failed to create sub-objective %q: %v", seed.name, err)
			os.Exit(1)
		}
		subObjectiveIDs[seed.name] = sub.ID
	}

	color.Cyan("Seeding %d risk categories...", len(categorySeeds))
	categoryIDs := make(map[string]int, len(categorySeeds))
	for _, seed := range categorySeeds {
		description := seed.description
		category := &models.RiskCategory{
			Name:        seed.name,
			Description: &description,
			Year:        seedYear,
		}
		if err := repo.CreateCategory(ctx, category); err != nil {
			color.Red("Failed to create category %q: %v", seed.name, err)
			os.Exit(1)
		}
		categoryIDs[seed.name] = category.ID
	}

	color.Cyan("Seeding %d strategic risk mappings...", len(mappingSeeds))
	seeded := 0
	for _, seed := range mappingSeeds {
		objectiveID, okObj := objectiveIDs[seed.objective]
		subObjectiveID, okSub := subObjectiveIDs[seed.subObjective]
		categoryID, okCat := categoryIDs[seed.category]
		if !okObj || !okSub || !okCat {
			color.Yellow("Skipping mapping %q -> %q -> %q: missing reference",
				seed.objective, seed.subObjective, seed.category)
			continue
		}
		mapping := &models.StrategicRiskMapping{
			StrategicObjectiveID:    objectiveID,
			SubStrategicObjectiveID: subObjectiveID,
			RiskCategoryID:          categoryID,
			Year:                    seedYear,
		}
		if err := repo.CreateMapping(ctx, mapping); err != nil {
			color.Red("Failed to create mapping for %q: %v", seed.subObjective, err)
			os.Exit(1)
		}
		seeded++
	}

	color.Green("Done: %d objectives, %d sub-objectives, %d categories, %d mappings",
		len(objectiveIDs), len(subObjectiveIDs), len(categoryIDs), seeded)
}
