package main

import (
	"os"
	"time"

	"github.com/folio-next/internal/config"
	"github.com/folio-next/internal/constants"
	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 管理员账号（已存在时跳过）
	if err := models.InitDefaultAdmin(
		os.Getenv("FOLIO_DEFAULT_ADMIN_USERNAME"),
		os.Getenv("FOLIO_DEFAULT_ADMIN_PASSWORD"),
		os.Getenv("FOLIO_DEFAULT_ADMIN_EMAIL"),
	); err != nil {
		stdLog.Fatalf("Failed to init admin account: %v", err)
	}

	// 示例项目
	projects := []models.Project{
		{
			Title:      "Folio-Next",
			Slug:       "folio-next",
			Summary:    "Personal portfolio backend with admin console",
			CoverImage: "/uploads/projects/folio-next.png",
			RepoURL:    "https://github.com/folio-next",
			TechTags:   "go,gin,gorm",
			Status:     constants.ProjectStatusPublished,
			Featured:   true,
			SortOrder:  100,
		},
		{
			Title:     "Pixel Garden",
			Slug:      "pixel-garden",
			Summary:   "Procedural pixel-art plant generator",
			TechTags:  "typescript,canvas",
			Status:    constants.ProjectStatusPublished,
			SortOrder: 90,
		},
		{
			Title:     "Weekend Synth",
			Slug:      "weekend-synth",
			Summary:   "Browser based polyphonic synthesizer",
			TechTags:  "typescript,webaudio",
			Status:    constants.ProjectStatusDraft,
			SortOrder: 80,
		},
	}
	for _, project := range projects {
		var existing models.Project
		if err := models.DB.Where("slug = ?", project.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&project).Error; err != nil {
				stdLog.Printf("Failed to create project %s: %v", project.Slug, err)
			} else {
				stdLog.Printf("Created project: %s", project.Slug)
			}
		} else {
			stdLog.Printf("Project already exists: %s", project.Slug)
		}
	}

	// 示例技术栈
	techItems := []models.TechStackItem{
		{Name: "Go", Category: constants.TechCategoryLanguage, Level: 90, SortOrder: 100},
		{Name: "TypeScript", Category: constants.TechCategoryLanguage, Level: 85, SortOrder: 90},
		{Name: "Gin", Category: constants.TechCategoryFramework, Level: 85, SortOrder: 80},
		{Name: "PostgreSQL", Category: constants.TechCategoryDatabase, Level: 75, SortOrder: 70},
		{Name: "Redis", Category: constants.TechCategoryDatabase, Level: 70, SortOrder: 60},
		{Name: "Docker", Category: constants.TechCategoryTool, Level: 80, SortOrder: 50},
	}
	for _, item := range techItems {
		var existing models.TechStackItem
		if err := models.DB.Where("name = ?", item.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create tech stack item %s: %v", item.Name, err)
			} else {
				stdLog.Printf("Created tech stack item: %s", item.Name)
			}
		} else {
			stdLog.Printf("Tech stack item already exists: %s", item.Name)
		}
	}

	// 示例经历
	eduStart := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	eduEnd := time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)
	var eduCount int64
	models.DB.Model(&models.Education{}).Count(&eduCount)
	if eduCount == 0 {
		education := models.Education{
			School:    "Example University",
			Degree:    "B.Sc.",
			Field:     "Computer Science",
			StartDate: &eduStart,
			EndDate:   &eduEnd,
			SortOrder: 100,
		}
		if err := models.DB.Create(&education).Error; err != nil {
			stdLog.Printf("Failed to create education entry: %v", err)
		} else {
			stdLog.Printf("Created education entry: %s", education.School)
		}
	}

	expStart := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	var expCount int64
	models.DB.Model(&models.Experience{}).Count(&expCount)
	if expCount == 0 {
		experience := models.Experience{
			Company:     "Example Studio",
			Role:        "Backend Engineer",
			Location:    "Remote",
			StartDate:   &expStart,
			Description: "Building and operating Go services.",
			SortOrder:   100,
		}
		if err := models.DB.Create(&experience).Error; err != nil {
			stdLog.Printf("Failed to create experience entry: %v", err)
		} else {
			stdLog.Printf("Created experience entry: %s", experience.Company)
		}
	}

	// 示例美术作品
	artPieces := []models.ArtPiece{
		{Title: "Dawn Over Wires", Image: "/uploads/art/dawn-over-wires.png", Medium: "Digital", Year: 2024, SortOrder: 100},
		{Title: "Quiet Terminal", Image: "/uploads/art/quiet-terminal.png", Medium: "Pixel art", Year: 2023, SortOrder: 90},
	}
	for _, piece := range artPieces {
		var existing models.ArtPiece
		if err := models.DB.Where("title = ?", piece.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&piece).Error; err != nil {
				stdLog.Printf("Failed to create art piece %s: %v", piece.Title, err)
			} else {
				stdLog.Printf("Created art piece: %s", piece.Title)
			}
		} else {
			stdLog.Printf("Art piece already exists: %s", piece.Title)
		}
	}

	stdLog.Printf("Seed completed")
}
