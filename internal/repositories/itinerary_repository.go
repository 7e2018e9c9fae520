package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripwise/internal/models/db_models"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *dbm.SavedItinerary) error
	GetByID(ctx context.Context, id string) (*dbm.SavedItinerary, error)
	List(ctx context.Context, page int, pageSize int) ([]dbm.SavedItinerary, int64, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *dbm.SavedItinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

// GetByID returns nil, nil when no row matches.
func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*dbm.SavedItinerary, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var itinerary dbm.SavedItinerary
	if err := r.db.WithContext(ctx).Where("id = ?", parsed).First(&itinerary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) List(ctx context.Context, page int, pageSize int) ([]dbm.SavedItinerary, int64, error) {
	var (
		items []dbm.SavedItinerary
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&dbm.SavedItinerary{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// memoryItineraryRepository backs the service when no database is configured.
type memoryItineraryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]dbm.SavedItinerary
	now   func() time.Time
}

func NewMemoryItineraryRepository() ItineraryRepository {
	return &memoryItineraryRepository{
		items: make(map[uuid.UUID]dbm.SavedItinerary),
		now:   time.Now,
	}
}

func (r *memoryItineraryRepository) Create(_ context.Context, itinerary *dbm.SavedItinerary) error {
	itinerary.Stamp(r.now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[itinerary.ID] = *itinerary
	return nil
}

func (r *memoryItineraryRepository) GetByID(_ context.Context, id string) (*dbm.SavedItinerary, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	itinerary, ok := r.items[parsed]
	if !ok {
		return nil, nil
	}
	return &itinerary, nil
}

func (r *memoryItineraryRepository) List(_ context.Context, page int, pageSize int) ([]dbm.SavedItinerary, int64, error) {
	r.mu.RLock()
	all := make([]dbm.SavedItinerary, 0, len(r.items))
	for _, it := range r.items {
		all = append(all, it)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt > all[j].CreatedAt
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []dbm.SavedItinerary{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}
