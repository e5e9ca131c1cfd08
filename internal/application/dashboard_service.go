package application

import (
	"context"
	"time"

	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

// DashboardStats summarizes the content collections for the admin panel.
type DashboardStats struct {
	Stats struct {
		GalleryCount   int `json:"galleryCount"`
		ProjectsCount  int `json:"projectsCount"`
		AdminsCount    int `json:"adminsCount"`
		GalleryGrowth  int `json:"galleryGrowth"`
		ProjectsGrowth int `json:"projectsGrowth"`
	} `json:"stats"`
	Recent struct {
		Gallery  []domain.GalleryItem `json:"gallery"`
		Projects []domain.Project     `json:"projects"`
	} `json:"recent"`
	Activity []ActivityEntry `json:"activity"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Item      string    `json:"item"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type DashboardService struct {
	gallery  domain.GalleryRepository
	projects domain.ProjectRepository
	admins   domain.AdminRepository
}

func NewDashboardService(gallery domain.GalleryRepository, projects domain.ProjectRepository, admins domain.AdminRepository) *DashboardService {
	return &DashboardService{gallery: gallery, projects: projects, admins: admins}
}

// Stats gathers counts, 30-day growth percentages, the five most recent
// entries of each collection and a recent-activity feed.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	galleryCount, err := s.gallery.Count(ctx)
	if err != nil {
		return nil, err
	}
	projectsCount, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	adminsCount, err := s.admins.Count(ctx)
	if err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	galleryLastMonth, err := s.gallery.CountSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}
	projectsLastMonth, err := s.projects.CountSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	recentGallery, err := s.gallery.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	recentProjects, err := s.projects.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	activityGallery, err := s.gallery.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{}
	stats.Stats.GalleryCount = galleryCount
	stats.Stats.ProjectsCount = projectsCount
	stats.Stats.AdminsCount = adminsCount
	stats.Stats.GalleryGrowth = growthPercent(galleryLastMonth, galleryCount)
	stats.Stats.ProjectsGrowth = growthPercent(projectsLastMonth, projectsCount)
	stats.Recent.Gallery = recentGallery
	stats.Recent.Projects = recentProjects

	stats.Activity = make([]ActivityEntry, 0, len(activityGallery))
	for _, item := range activityGallery {
		stats.Activity = append(stats.Activity, ActivityEntry{
			ID:        item.ID.String(),
			Action:    "Gallery added",
			Item:      item.Title,
			Type:      "gallery",
			CreatedAt: item.CreatedAt,
		})
	}
	return stats, nil
}

func growthPercent(recent, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(recent)/float64(total)*100 + 0.5)
}
