// internal/seed/seed.go

// Package seed holds the in-memory data set a session starts from.
// Nothing here survives process exit.
package seed

import "github.com/wealthflow/wealthflow-backend/internal/models"

// User returns the demo creator profile.
func User() models.User {
	return models.User{
		Name:   "Alex Chen",
		Avatar: "https://picsum.photos/200/200?random=99",
		Bio:    "Indie hacker building audience-first products. Writing about solo monetization.",
		Role:   "Founder",
		Stats: models.UserStats{
			TotalEarnings: 12450.50,
			CoursesSold:   342,
			CommunityRank: "Top 5%",
		},
	}
}

// Courses returns the marketplace catalogue, newest first.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:             "c-1001",
			Title:          "独立开发者周刊: 从 0 到 1000 订阅",
			Author:         "Sarah Lin",
			Price:          29,
			CommissionRate: 30,
			Sales:          1280,
			Category:       models.CategoryNewsletter,
			Rating:         4.9,
			ImageURL:       "https://picsum.photos/400/250?random=1",
			Description:    "A playbook for growing a paid indie-dev newsletter to its first 1000 subscribers.",
			FullDescription: "Covers positioning, a repeatable publishing cadence, referral loops, " +
				"and the exact sponsorship outreach emails used to cross $2k MRR.",
			Features:       []string{"12 lessons", "Swipe file", "Private chat"},
			TargetAudience: []string{"Writers", "Indie hackers"},
		},
		{
			ID:             "c-1002",
			Title:          "Faceless YouTube Automation",
			Author:         "Marcus Webb",
			Price:          79,
			CommissionRate: 25,
			Sales:          860,
			Category:       models.CategoryCourse,
			Rating:         4.7,
			ImageURL:       "https://picsum.photos/400/250?random=2",
			Description:    "Build a voiceover-driven channel without showing your face.",
		},
		{
			ID:             "c-1003",
			Title:          "Notion 模板变现电子书",
			Author:         "Yuki Tan",
			Price:          19,
			CommissionRate: 40,
			Sales:          2150,
			Category:       models.CategoryEBook,
			Rating:         4.8,
			ImageURL:       "https://picsum.photos/400/250?random=3",
			Description:    "Package and sell Notion templates on Gumroad, step by step.",
		},
		{
			ID:             "c-1004",
			Title:          "Creator Ops Community",
			Author:         "Dana Ortiz",
			Price:          15,
			CommissionRate: 20,
			Sales:          430,
			Category:       models.CategoryCommunity,
			Rating:         4.6,
			ImageURL:       "https://picsum.photos/400/250?random=4",
			Description:    "Monthly community for creators systematizing their back office.",
		},
	}
}

// Ideas returns the static idea catalogue. Index 0 is the dashboard's
// featured idea.
func Ideas() []models.Idea {
	return []models.Idea{
		{
			ID:         "i-2001",
			Title:      "AI 简历诊所 (AI Resume Clinic)",
			Author:     "WealthFlow Research",
			Tags:       []string{"#AI", "#Freelance"},
			Difficulty: models.DifficultyEasy,
			Investment: models.InvestmentLow,
			Likes:      324,
			Content: "Offer 24-hour resume rewrites powered by an LLM draft plus a human polish pass. " +
				"Sell on Fiverr and Xiaohongshu; upsell a mock-interview package.",
			Timestamp:      "2d ago",
			MonthlyRevenue: "$800 - $3,000",
			ValidationTime: "1 week",
			Tools:          []string{"Gemini", "Canva", "Stripe"},
			Sop: []models.SopStep{
				{Title: "Pick a niche", Description: "Target one role family (e.g. junior data analysts) so before/after samples stay relevant."},
				{Title: "Build 3 samples", Description: "Rewrite three real resumes free in exchange for testimonials."},
				{Title: "List and price", Description: "Launch a $39 express tier and a $99 tier with a 30-minute call."},
			},
		},
		{
			ID:         "i-2002",
			Title:      "Local Business Shorts Agency",
			Author:     "WealthFlow Research",
			Tags:       []string{"#Video", "#Local"},
			Difficulty: models.DifficultyMedium,
			Investment: models.InvestmentLow,
			Likes:      211,
			Content: "Batch-film vertical video for restaurants and gyms in one afternoon a week. " +
				"Charge a flat monthly retainer per location.",
			Timestamp:      "5d ago",
			MonthlyRevenue: "$2,000 - $8,000",
			ValidationTime: "2 weeks",
		},
		{
			ID:         "i-2003",
			Title:      "付费知识星球: 出海工具箱",
			Author:     "WealthFlow Research",
			Tags:       []string{"#Community", "#SaaS"},
			Difficulty: models.DifficultyHard,
			Investment: models.InvestmentMedium,
			Likes:      158,
			Content: "Curate cross-border e-commerce tooling and run a paid membership circle " +
				"with weekly teardowns of winning stores.",
			Timestamp: "1w ago",
		},
	}
}

// Posts returns the community feed, newest first.
func Posts() []models.Post {
	return []models.Post{
		{
			ID:           "p-3001",
			Author:       "Mia Johnson",
			AuthorRole:   "Freelancer",
			AuthorAvatar: "https://picsum.photos/100/100?random=11",
			Content:      "Crossed $1k this month from a single Notion template. Distribution beats product, every time.",
			Likes:        48,
			Comments:     12,
			Timestamp:    "3h ago",
			Tags:         []string{"#Milestone"},
		},
		{
			ID:         "p-3002",
			Author:     "Leo Zhang",
			AuthorRole: "Founder",
			Content:    "问一下大家: 课程定价 $29 还是 $49 转化更好? A/B 过的朋友求数据。",
			Likes:      23,
			Comments:   9,
			Timestamp:  "6h ago",
			Tags:       []string{"#Pricing", "#General"},
		},
		{
			ID:           "p-3003",
			Author:       "Priya Nair",
			AuthorRole:   "Creator",
			AuthorAvatar: "https://picsum.photos/100/100?random=13",
			Content:      "Shipped my first affiliate link today. Tiny win, but it compounds.",
			Likes:        31,
			Comments:     4,
			Timestamp:    "1d ago",
			Tags:         []string{"#General"},
		},
	}
}
