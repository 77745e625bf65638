package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "gear-tracker/pkg/errors"
)

func newPhotoServiceForTest(equipmentRepo *fakeEquipmentRepo, photoRepo *fakePhotoRepo, storage *fakeStorage) PhotoServiceInterface {
	return NewPhotoService(equipmentRepo, photoRepo, storage, zap.NewNop())
}

func uploadsOf(names ...string) []PhotoUpload {
	uploads := make([]PhotoUpload, len(names))
	for i, name := range names {
		uploads[i] = PhotoUpload{
			FileName:    name,
			ContentType: "image/jpeg",
			Content:     strings.NewReader("fake image bytes"),
		}
	}
	return uploads
}

func TestUploadFirstBatchMarksOnePrimary(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	storage := newFakeStorage()
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, storage)

	photos, err := svc.Upload(context.Background(), "org-1", "eq-1", uploadsOf("a.jpg", "b.jpg", "c.jpg"))
	require.NoError(t, err)
	require.Len(t, photos, 3)

	primaries := 0
	for _, p := range photos {
		if p.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
	assert.True(t, photos[0].IsPrimary, "the first photo of the batch becomes primary")
	assert.Len(t, storage.saved, 3)
}

func TestUploadKeepsExistingPrimary(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	photoRepo.add("eq-1", true, "equipment-photos/existing.jpg")
	storage := newFakeStorage()
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, storage)

	photos, err := svc.Upload(context.Background(), "org-1", "eq-1", uploadsOf("a.jpg"))
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.False(t, photos[0].IsPrimary)
}

func TestUploadRejectsEmptyAndOversizedBatches(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	svc := newPhotoServiceForTest(equipmentRepo, newFakePhotoRepo(), newFakeStorage())

	var invalidInput *apperrors.InvalidInputError

	_, err := svc.Upload(context.Background(), "org-1", "eq-1", nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidInput))

	_, err = svc.Upload(context.Background(), "org-1", "eq-1",
		uploadsOf("1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalidInput))
}

func TestUploadUnknownEquipmentIsNotFound(t *testing.T) {
	svc := newPhotoServiceForTest(newFakeEquipmentRepo(), newFakePhotoRepo(), newFakeStorage())

	_, err := svc.Upload(context.Background(), "org-1", "missing", uploadsOf("a.jpg"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUploadCompensatesWhenOneBlobFails(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	storage := newFakeStorage()
	storage.failSaveOn = "bad.jpg"
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, storage)

	_, err := svc.Upload(context.Background(), "org-1", "eq-1", uploadsOf("a.jpg", "bad.jpg", "c.jpg"))
	require.Error(t, err)

	assert.Empty(t, storage.saved, "stored blobs are deleted again")
	assert.Empty(t, photoRepo.photos["eq-1"], "no records are written")
}

func TestUploadCompensatesWhenRecordsFail(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	photoRepo.createBatchErr = fmt.Errorf("database unavailable")
	storage := newFakeStorage()
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, storage)

	_, err := svc.Upload(context.Background(), "org-1", "eq-1", uploadsOf("a.jpg", "b.jpg"))
	require.Error(t, err)
	assert.Empty(t, storage.saved)
}

func TestDeletePrimaryPromotesOldest(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	primary := photoRepo.add("eq-1", true, "equipment-photos/first.jpg")
	photoRepo.add("eq-1", false, "equipment-photos/second.jpg")
	storage := newFakeStorage()
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, storage)

	err := svc.Delete(context.Background(), "org-1", "eq-1", primary.ID)
	require.NoError(t, err)

	require.Equal(t, []string{"eq-1"}, photoRepo.promoteCalls)
	remaining := photoRepo.photos["eq-1"]
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].IsPrimary)
	assert.Equal(t, []string{"equipment-photos/first.jpg"}, storage.deleted)
}

func TestDeleteNonPrimarySkipsPromotion(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	photoRepo.add("eq-1", true, "equipment-photos/first.jpg")
	other := photoRepo.add("eq-1", false, "equipment-photos/second.jpg")
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, newFakeStorage())

	err := svc.Delete(context.Background(), "org-1", "eq-1", other.ID)
	require.NoError(t, err)
	assert.Empty(t, photoRepo.promoteCalls)
}

func TestDeleteKeepsRecordWhenBlobDeleteFails(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	photo := photoRepo.add("eq-1", true, "equipment-photos/stuck.jpg")
	storage := newFakeStorage()
	storage.failDeleteOn = "stuck.jpg"
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, storage)

	err := svc.Delete(context.Background(), "org-1", "eq-1", photo.ID)
	require.Error(t, err)
	assert.Len(t, photoRepo.photos["eq-1"], 1, "record stays when the blob could not be removed")
}

func TestDeletePhotoOfForeignOrganizationIsNotFound(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentRepo.add("org-1", "eq-1", "SM58")
	photoRepo := newFakePhotoRepo()
	photo := photoRepo.add("eq-1", true, "equipment-photos/first.jpg")
	svc := newPhotoServiceForTest(equipmentRepo, photoRepo, newFakeStorage())

	err := svc.Delete(context.Background(), "org-2", "eq-1", photo.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
