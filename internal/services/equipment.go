package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/repositories"
	"gear-tracker/pkg/filestorage"
	"gear-tracker/pkg/utils"
)

const (
	recentEventUsageLimit = 5
	qrReferenceTTL        = 24 * time.Hour
)

func qrReferenceCacheKey(equipmentID string) string {
	return "qr:equipment:" + equipmentID
}

type EquipmentServiceInterface interface {
	List(ctx context.Context, orgID string, params utils.ListParams) ([]dto.EquipmentListItemDTO, uint64, error)
	Find(ctx context.Context, orgID, id string) (*dto.EquipmentDTO, error)
	Create(ctx context.Context, orgID string, in dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	Update(ctx context.Context, orgID, id string, in dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	Delete(ctx context.Context, orgID, id string) error
	GenerateQrReference(ctx context.Context, orgID, id string) (*dto.QrReferenceDTO, error)
	Export(ctx context.Context, orgID string, params utils.ListParams) (*excelize.File, error)
}

type EquipmentService struct {
	equipmentRepo   repositories.EquipmentRepositoryInterface
	photoRepo       repositories.PhotoRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	eventUsageRepo  repositories.EventUsageRepositoryInterface
	cache           repositories.CacheRepositoryInterface
	fileStorage     filestorage.FileStorage
	appBaseURL      string
	logger          *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	eventUsageRepo repositories.EventUsageRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	fileStorage filestorage.FileStorage,
	appBaseURL string,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo:   equipmentRepo,
		photoRepo:       photoRepo,
		maintenanceRepo: maintenanceRepo,
		eventUsageRepo:  eventUsageRepo,
		cache:           cache,
		fileStorage:     fileStorage,
		appBaseURL:      appBaseURL,
		logger:          logger,
	}
}

func (s *EquipmentService) List(ctx context.Context, orgID string, params utils.ListParams) ([]dto.EquipmentListItemDTO, uint64, error) {
	rows, total, err := s.equipmentRepo.List(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return []dto.EquipmentListItemDTO{}, total, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	photoByEquipment, err := s.photoRepo.PrimaryByEquipmentIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	scheduleByEquipment, err := s.maintenanceRepo.NextScheduleByEquipmentIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.EquipmentListItemDTO, len(rows))
	for i, row := range rows {
		row := row
		item := dto.EquipmentListItemDTO{
			ID:            row.ID,
			Name:          row.Name,
			Type:          row.Type,
			Category:      toCategoryRef(&row),
			Brand:         row.Brand,
			Model:         row.Model,
			SerialNumber:  row.SerialNumber,
			PurchaseDate:  row.PurchaseDate,
			PurchasePrice: row.PurchasePrice,
			CurrentValue:  row.CurrentValue,
			Condition:     row.Condition,
			Location:      row.Location,
			AssignedTo:    toAssigneeRef(&row),
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
		if photo, ok := photoByEquipment[row.ID]; ok {
			p := toPhotoDTO(photo)
			item.PrimaryPhoto = &p
		}
		if schedule, ok := scheduleByEquipment[row.ID]; ok {
			sch := toScheduleDTO(schedule)
			item.NextSchedule = &sch
		}
		items[i] = item
	}

	return items, total, nil
}

func (s *EquipmentService) Find(ctx context.Context, orgID, id string) (*dto.EquipmentDTO, error) {
	row, err := s.equipmentRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	out := &dto.EquipmentDTO{
		ID:            row.ID,
		Name:          row.Name,
		Type:          row.Type,
		Category:      toCategoryRef(row),
		Brand:         row.Brand,
		Model:         row.Model,
		SerialNumber:  row.SerialNumber,
		PurchaseDate:  row.PurchaseDate,
		PurchasePrice: row.PurchasePrice,
		CurrentValue:  row.CurrentValue,
		Condition:     row.Condition,
		Notes:         row.Notes,
		Location:      row.Location,
		AssignedTo:    toAssigneeRef(row),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		photos, err := s.photoRepo.ListByEquipment(gctx, id)
		if err != nil {
			return err
		}
		out.Photos = make([]dto.PhotoDTO, len(photos))
		for i, p := range photos {
			out.Photos[i] = toPhotoDTO(p)
		}
		return nil
	})
	g.Go(func() error {
		schedules, err := s.maintenanceRepo.SchedulesByEquipment(gctx, id)
		if err != nil {
			return err
		}
		out.MaintenanceSchedules = make([]dto.MaintenanceScheduleDTO, len(schedules))
		for i, sch := range schedules {
			out.MaintenanceSchedules[i] = toScheduleDTO(sch)
		}
		return nil
	})
	g.Go(func() error {
		logs, err := s.maintenanceRepo.LogsByEquipment(gctx, id)
		if err != nil {
			return err
		}
		out.MaintenanceLogs = make([]dto.MaintenanceLogDTO, len(logs))
		for i, l := range logs {
			out.MaintenanceLogs[i] = toLogDTO(l)
		}
		return nil
	})
	g.Go(func() error {
		usages, err := s.eventUsageRepo.RecentByEquipment(gctx, id, recentEventUsageLimit)
		if err != nil {
			return err
		}
		out.EventUsages = make([]dto.EventUsageDTO, len(usages))
		for i, u := range usages {
			out.EventUsages[i] = toEventUsageDTO(u)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *EquipmentService) Create(ctx context.Context, orgID string, in dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	row, err := s.equipmentRepo.Create(ctx, orgID, in)
	if err != nil {
		return nil, err
	}
	return s.Find(ctx, orgID, row.ID)
}

func (s *EquipmentService) Update(ctx context.Context, orgID, id string, in dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	patch := buildEquipmentPatch(in)
	if len(patch) == 0 {
		return s.Find(ctx, orgID, id)
	}

	if err := s.equipmentRepo.Update(ctx, orgID, id, patch); err != nil {
		return nil, err
	}
	s.invalidateQrReference(ctx, id)
	return s.Find(ctx, orgID, id)
}

func buildEquipmentPatch(in dto.UpdateEquipmentDTO) map[string]interface{} {
	patch := map[string]interface{}{}
	if in.Name.Valid {
		patch["name"] = in.Name.String
	}
	if in.Type.Valid {
		patch["type"] = in.Type.String
	}
	if in.CategoryID.Valid {
		patch["category_id"] = in.CategoryID.String
	}
	if in.Brand.Valid {
		patch["brand"] = in.Brand.String
	}
	if in.Model.Valid {
		patch["model"] = in.Model.String
	}
	if in.SerialNumber.Valid {
		patch["serial_number"] = in.SerialNumber.String
	}
	if in.PurchaseDate.Valid {
		patch["purchase_date"] = in.PurchaseDate.Time
	}
	if in.PurchasePrice.Valid {
		patch["purchase_price"] = in.PurchasePrice.Float64
	}
	if in.CurrentValue.Valid {
		patch["current_value"] = in.CurrentValue.Float64
	}
	if in.Condition.Valid {
		patch["condition"] = in.Condition.String
	}
	if in.Notes.Valid {
		patch["notes"] = in.Notes.String
	}
	if in.Location.Valid {
		patch["location"] = in.Location.String
	}
	if in.AssignedToID.Valid {
		patch["assigned_to_id"] = in.AssignedToID.String
	}
	return patch
}

// Delete removes the blobs first and the record last. Every blob
// delete is attempted; any failure aborts before the record delete so
// a retry can finish the cleanup.
func (s *EquipmentService) Delete(ctx context.Context, orgID, id string) error {
	if _, err := s.equipmentRepo.FindByID(ctx, orgID, id); err != nil {
		return err
	}

	photos, err := s.photoRepo.ListByEquipment(ctx, id)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, photo := range photos {
		photo := photo
		g.Go(func() error {
			if err := s.fileStorage.Delete(ctx, photo.StorageKey); err != nil {
				return fmt.Errorf("deleting blob %s: %w", photo.StorageKey, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("blob cleanup failed, keeping equipment record", zap.String("equipmentID", id), zap.Error(err))
		return err
	}

	if err := s.equipmentRepo.Delete(ctx, orgID, id); err != nil {
		return err
	}
	s.invalidateQrReference(ctx, id)
	return nil
}

// GenerateQrReference is pure given the equipment row, so the rendered
// reference is cached; update and delete invalidate it.
func (s *EquipmentService) GenerateQrReference(ctx context.Context, orgID, id string) (*dto.QrReferenceDTO, error) {
	row, err := s.equipmentRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	key := qrReferenceCacheKey(row.ID)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var ref dto.QrReferenceDTO
		if err := json.Unmarshal([]byte(cached), &ref); err == nil {
			return &ref, nil
		}
	}

	url := fmt.Sprintf("%s/equipment/%s", s.appBaseURL, row.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}

	ref := &dto.QrReferenceDTO{
		EquipmentID: row.ID,
		Name:        row.Name,
		URL:         url,
		QrCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}

	if payload, err := json.Marshal(ref); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), qrReferenceTTL); err != nil {
			s.logger.Warn("caching qr reference failed", zap.String("equipmentID", row.ID), zap.Error(err))
		}
	}
	return ref, nil
}

func (s *EquipmentService) invalidateQrReference(ctx context.Context, id string) {
	if err := s.cache.Del(ctx, qrReferenceCacheKey(id)); err != nil {
		s.logger.Warn("invalidating qr reference failed", zap.String("equipmentID", id), zap.Error(err))
	}
}

var exportHeaders = []string{
	"Name", "Type", "Category", "Brand", "Model", "Serial Number",
	"Condition", "Location", "Purchase Date", "Purchase Price",
	"Current Value", "Assigned To",
}

// Export renders the current filter set as a spreadsheet, without
// pagination.
func (s *EquipmentService) Export(ctx context.Context, orgID string, params utils.ListParams) (*excelize.File, error) {
	rows, err := s.equipmentRepo.ListAll(ctx, orgID, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowNum := i + 2
		values := []interface{}{
			row.Name,
			row.Type,
			row.CategoryName.String,
			row.Brand.String,
			row.Model.String,
			row.SerialNumber.String,
			row.Condition.String,
			row.Location.String,
			"",
			nil,
			nil,
			row.AssigneeName.String,
		}
		if row.PurchaseDate.Valid {
			values[8] = row.PurchaseDate.Time.Format("2006-01-02")
		}
		if row.PurchasePrice.Valid {
			values[9] = row.PurchasePrice.Float64
		}
		if row.CurrentValue.Valid {
			values[10] = row.CurrentValue.Float64
		}
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
