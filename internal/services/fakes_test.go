package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/entities"
	"gear-tracker/internal/repositories"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/utils"
)

func equipmentKey(orgID, id string) string {
	return orgID + "/" + id
}

type fakeEquipmentRepo struct {
	rows        map[string]*repositories.EquipmentRow
	deleteCalls int
	updateCalls []map[string]interface{}
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{rows: map[string]*repositories.EquipmentRow{}}
}

func (f *fakeEquipmentRepo) add(orgID, id, name string) {
	row := &repositories.EquipmentRow{}
	row.ID = id
	row.OrganizationID = orgID
	row.Name = name
	row.Type = "Microphone"
	row.CreatedAt = time.Now()
	row.UpdatedAt = time.Now()
	f.rows[equipmentKey(orgID, id)] = row
}

func (f *fakeEquipmentRepo) List(_ context.Context, orgID string, _ utils.ListParams) ([]repositories.EquipmentRow, uint64, error) {
	items := []repositories.EquipmentRow{}
	for _, row := range f.rows {
		if row.OrganizationID == orgID {
			items = append(items, *row)
		}
	}
	return items, uint64(len(items)), nil
}

func (f *fakeEquipmentRepo) ListAll(_ context.Context, orgID string, _ utils.ListParams) ([]repositories.EquipmentRow, error) {
	items, _, _ := f.List(context.Background(), orgID, utils.ListParams{})
	return items, nil
}

func (f *fakeEquipmentRepo) FindByID(_ context.Context, orgID, id string) (*repositories.EquipmentRow, error) {
	row, ok := f.rows[equipmentKey(orgID, id)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return row, nil
}

func (f *fakeEquipmentRepo) Create(_ context.Context, orgID string, in dto.CreateEquipmentDTO) (*repositories.EquipmentRow, error) {
	id := fmt.Sprintf("eq-%d", len(f.rows)+1)
	f.add(orgID, id, in.Name)
	return f.rows[equipmentKey(orgID, id)], nil
}

func (f *fakeEquipmentRepo) Update(_ context.Context, orgID, id string, patch map[string]interface{}) error {
	if _, ok := f.rows[equipmentKey(orgID, id)]; !ok {
		return apperrors.ErrNotFound
	}
	f.updateCalls = append(f.updateCalls, patch)
	return nil
}

func (f *fakeEquipmentRepo) Delete(_ context.Context, orgID, id string) error {
	key := equipmentKey(orgID, id)
	if _, ok := f.rows[key]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.rows, key)
	f.deleteCalls++
	return nil
}

type fakePhotoRepo struct {
	photos         map[string][]entities.EquipmentPhoto
	promoteCalls   []string
	createBatchErr error
	nextID         int
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: map[string][]entities.EquipmentPhoto{}}
}

func (f *fakePhotoRepo) add(equipmentID string, isPrimary bool, storageKey string) entities.EquipmentPhoto {
	f.nextID++
	p := entities.EquipmentPhoto{
		ID:          fmt.Sprintf("photo-%d", f.nextID),
		EquipmentID: equipmentID,
		PhotoURL:    "https://cdn.example/" + storageKey,
		StorageKey:  storageKey,
		IsPrimary:   isPrimary,
		CreatedAt:   time.Now().Add(time.Duration(f.nextID) * time.Second),
	}
	f.photos[equipmentID] = append(f.photos[equipmentID], p)
	return p
}

func (f *fakePhotoRepo) ListByEquipment(_ context.Context, equipmentID string) ([]entities.EquipmentPhoto, error) {
	photos := append([]entities.EquipmentPhoto{}, f.photos[equipmentID]...)
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

func (f *fakePhotoRepo) FindByID(_ context.Context, equipmentID, photoID string) (*entities.EquipmentPhoto, error) {
	for _, p := range f.photos[equipmentID] {
		if p.ID == photoID {
			p := p
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakePhotoRepo) CreateBatch(_ context.Context, equipmentID string, photos []repositories.NewPhoto) ([]entities.EquipmentPhoto, error) {
	if f.createBatchErr != nil {
		return nil, f.createBatchErr
	}
	hasPrimary := false
	for _, p := range f.photos[equipmentID] {
		if p.IsPrimary {
			hasPrimary = true
		}
	}
	created := []entities.EquipmentPhoto{}
	for i, photo := range photos {
		created = append(created, f.add(equipmentID, !hasPrimary && i == 0, photo.StorageKey))
	}
	return created, nil
}

func (f *fakePhotoRepo) Delete(_ context.Context, photoID string) error {
	for equipmentID, photos := range f.photos {
		for i, p := range photos {
			if p.ID == photoID {
				f.photos[equipmentID] = append(photos[:i:i], photos[i+1:]...)
				return nil
			}
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakePhotoRepo) PromoteOldest(_ context.Context, equipmentID string) error {
	f.promoteCalls = append(f.promoteCalls, equipmentID)
	photos := f.photos[equipmentID]
	for _, p := range photos {
		if p.IsPrimary {
			return nil
		}
	}
	if len(photos) > 0 {
		photos[0].IsPrimary = true
	}
	return nil
}

func (f *fakePhotoRepo) PrimaryByEquipmentIDs(_ context.Context, equipmentIDs []string) (map[string]entities.EquipmentPhoto, error) {
	result := map[string]entities.EquipmentPhoto{}
	for _, id := range equipmentIDs {
		for _, p := range f.photos[id] {
			if p.IsPrimary {
				result[id] = p
			}
		}
	}
	return result, nil
}

type fakeMaintenanceRepo struct{}

func (fakeMaintenanceRepo) SchedulesByEquipment(context.Context, string) ([]entities.MaintenanceSchedule, error) {
	return []entities.MaintenanceSchedule{}, nil
}

func (fakeMaintenanceRepo) LogsByEquipment(context.Context, string) ([]repositories.MaintenanceLogRow, error) {
	return []repositories.MaintenanceLogRow{}, nil
}

func (fakeMaintenanceRepo) NextScheduleByEquipmentIDs(context.Context, []string) (map[string]entities.MaintenanceSchedule, error) {
	return map[string]entities.MaintenanceSchedule{}, nil
}

type fakeEventUsageRepo struct{}

func (fakeEventUsageRepo) RecentByEquipment(context.Context, string, uint64) ([]repositories.EventUsageRow, error) {
	return []repositories.EventUsageRow{}, nil
}

type fakeCache struct {
	store    map[string]string
	delCalls []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := f.store[key]
	if !ok {
		return "", fmt.Errorf("cache miss: %s", key)
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.store[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
		f.delCalls = append(f.delCalls, key)
	}
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

type fakeStorage struct {
	mu             sync.Mutex
	saved          map[string]bool
	deleted        []string
	failSaveOn     string
	failDeleteOn   string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string]bool{}}
}

func (f *fakeStorage) Save(_ context.Context, key, _ string, file io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSaveOn != "" && strings.Contains(key, f.failSaveOn) {
		return "", fmt.Errorf("blob store unavailable")
	}
	if file != nil {
		_, _ = io.Copy(io.Discard, file)
	}
	f.saved[key] = true
	return f.PublicURL(key), nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeleteOn != "" && strings.Contains(key, f.failDeleteOn) {
		return fmt.Errorf("blob store unavailable")
	}
	f.deleted = append(f.deleted, key)
	delete(f.saved, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example/" + key
}
