package views

import (
	"html/template"

	"github.com/rpupo63/ai-portfolio-site/models"
)

type Skill struct {
	Name  string
	Level int
}

type Service struct {
	Title       string
	Description string
	Features    []string
}

type HomePage struct {
	Skills   []Skill
	Services []Service
}

func NewHomePage() HomePage {
	return HomePage{
		Skills: []Skill{
			{Name: "Python", Level: 95},
			{Name: "Machine Learning", Level: 90},
			{Name: "TensorFlow/PyTorch", Level: 85},
			{Name: "Data Analysis", Level: 92},
			{Name: "SQL", Level: 88},
			{Name: "Cloud Platforms", Level: 80},
		},
		Services: []Service{
			{
				Title:       "AI Integration",
				Description: "Seamlessly integrate AI solutions into your existing systems and workflows.",
				Features:    []string{"Custom AI Models", "API Development", "System Integration"},
			},
			{
				Title:       "Data Science",
				Description: "Transform raw data into actionable insights and predictive models.",
				Features:    []string{"Data Analysis", "Predictive Modeling", "Visualization"},
			},
			{
				Title:       "ML Engineering",
				Description: "Build scalable machine learning pipelines and production-ready systems.",
				Features:    []string{"MLOps", "Model Deployment", "Performance Optimization"},
			},
		},
	}
}

type ProjectCard struct {
	Title       string
	Description string
	TechStack   []string
	Category    string
	Status      string
	Completed   bool
	Featured    bool
	GithubURL   string
	DemoURL     string
	ImageURL    string
}

type ProjectsPage struct {
	Featured []ProjectCard
	Others   []ProjectCard
	Empty    bool
}

// NewProjectsPage keeps the store order inside each section.
func NewProjectsPage(projects []*models.Project) ProjectsPage {
	page := ProjectsPage{Empty: len(projects) == 0}
	for _, p := range projects {
		card := ProjectCard{
			Title:       p.Title,
			Description: p.Description,
			TechStack:   p.TechStack,
			Category:    p.Category,
			Status:      p.Status,
			Completed:   p.IsCompleted(),
			Featured:    p.Featured,
			GithubURL:   deref(p.GithubURL),
			DemoURL:     deref(p.DemoURL),
			ImageURL:    deref(p.ImageURL),
		}
		if p.Featured {
			page.Featured = append(page.Featured, card)
		} else {
			page.Others = append(page.Others, card)
		}
	}
	return page
}

type CategoryCard struct {
	Name        string
	Description string
	NoteCount   int
}

type NoteCard struct {
	ID        string
	Title     string
	Category  string
	Summary   string
	Tags      []string
	MoreTags  int
	Published string
}

type NotesPage struct {
	Categories []CategoryCard
	Notes      []NoteCard
	Empty      bool
}

func NewNotesPage(notes []*models.Note, categories []*models.Category) NotesPage {
	counts := make(map[string]int, len(categories))
	for _, n := range notes {
		if n.CategoryID != nil {
			counts[n.CategoryID.String()]++
		}
	}

	page := NotesPage{Empty: len(notes) == 0}
	for _, c := range categories {
		page.Categories = append(page.Categories, CategoryCard{
			Name:        c.Name,
			Description: deref(c.Description),
			NoteCount:   counts[c.ID.String()],
		})
	}
	for _, n := range notes {
		tags, more := SplitTags(n.Tags, visibleTags)
		card := NoteCard{
			ID:        n.ID.String(),
			Title:     n.Title,
			Summary:   Excerpt(*n),
			Tags:      tags,
			MoreTags:  more,
			Published: FormatDate(n.CreatedAt),
		}
		if n.Category != nil {
			card.Category = n.Category.Name
		}
		page.Notes = append(page.Notes, card)
	}
	return page
}

type NotePage struct {
	Title     string
	Category  string
	Tags      []string
	Published string
	Body      template.HTML
}

func NewNotePage(note models.Note) (NotePage, error) {
	body, err := RenderMarkdown(note.Content)
	if err != nil {
		return NotePage{}, err
	}
	page := NotePage{
		Title:     note.Title,
		Tags:      note.Tags,
		Published: FormatDate(note.CreatedAt),
		Body:      body,
	}
	if note.Category != nil {
		page.Category = note.Category.Name
	}
	return page, nil
}

type VideoCard struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Views        string
	Published    string
}

type VideosPage struct {
	Videos []VideoCard
	Empty  bool
}

func NewVideosPage(videos []*models.Video) VideosPage {
	page := VideosPage{Empty: len(videos) == 0}
	for _, v := range videos {
		page.Videos = append(page.Videos, VideoCard{
			Title:        v.Title,
			Description:  deref(v.Description),
			VideoURL:     v.VideoURL,
			ThumbnailURL: deref(v.ThumbnailURL),
			Views:        FormatViews(v.Views),
			Published:    FormatDate(v.CreatedAt),
		})
	}
	return page
}

type StatCard struct {
	Title string
	Key   string
}

type QuickAction struct {
	Title       string
	Description string
	Href        string
}

type DashboardPage struct {
	Email        string
	StatCards    []StatCard
	QuickActions []QuickAction
}

// NewDashboardPage lists the cards; their values are filled in the browser from /api/admin/stats.
func NewDashboardPage(email string) DashboardPage {
	return DashboardPage{
		Email: email,
		StatCards: []StatCard{
			{Title: "Total Projects", Key: "projects"},
			{Title: "Published Notes", Key: "notes"},
			{Title: "Videos Uploaded", Key: "videos"},
			{Title: "New Messages", Key: "messages"},
			{Title: "Total Video Views", Key: "totalViews"},
		},
		QuickActions: []QuickAction{
			{Title: "View Projects", Description: "Review your published work", Href: "/projects"},
			{Title: "Browse Notes", Description: "Check your learning notes", Href: "/notes"},
			{Title: "Watch Videos", Description: "See what visitors watch", Href: "/videos"},
			{Title: "Metrics", Description: "Raw request metrics", Href: "/metrics"},
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
