package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TopicWasteEntryRecorded is the watermill topic the achievement/goal
// consumer listens on.
const TopicWasteEntryRecorded = "WASTE_ENTRY_RECORDED"

// CO2 factors in kg CO2 saved per kg, by waste type.
const (
	co2FactorRecyclable = 0.6
	co2FactorOrganic    = 0.3
	co2FactorHazardous  = 0.8
	co2FactorOther      = 0.4

	treesPerTonne = 17.0
)

var ErrEntryNotFound = errors.New("waste entry not found")

type IWasteService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateWasteEntryRequest) (*dto.WasteEntryResponse, error)
	ListEntries(ctx context.Context, userID uuid.UUID, page, perPage int) (*dto.ListWasteEntriesResponse, error)
	ToggleRecycled(ctx context.Context, userID, entryID uuid.UUID) (*dto.WasteEntryResponse, error)
	ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error)
	GetStatistics(ctx context.Context, userID uuid.UUID) (*dto.StatisticsResponse, error)
}

type wasteService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	logger     logger.ILogger
}

func NewWasteService(uowFactory unitofwork.RepositoryFactory, pubSub *gochannel.GoChannel, log logger.ILogger) IWasteService {
	return &wasteService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		logger:     log,
	}
}

func (s *wasteService) publishEntryRecorded(userID, entryID uuid.UUID) {
	if s.pubSub == nil {
		return
	}
	payload, _ := json.Marshal(dto.WasteEntryRecordedMessage{UserId: userID, EntryId: entryID})
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(TopicWasteEntryRecorded, msg); err != nil {
		s.logger.Warn("Waste", "Failed to publish entry recorded message", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func entryToResponse(e *entity.WasteEntry) *dto.WasteEntryResponse {
	return &dto.WasteEntryResponse{
		Id:                e.Id,
		WasteType:         string(e.WasteType),
		WeightKg:          e.WeightKg,
		Description:       e.Description,
		DisposalDate:      e.DisposalDate,
		Recycled:          e.Recycled,
		RecyclingCenterId: e.RecyclingCenterId,
		CreatedAt:         e.CreatedAt,
	}
}

func (s *wasteService) CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateWasteEntryRequest) (*dto.WasteEntryResponse, error) {
	wasteType := entity.WasteType(req.WasteType)
	if !wasteType.Valid() {
		return nil, fmt.Errorf("invalid waste type: %s", req.WasteType)
	}

	disposalDate := time.Now().UTC()
	if req.DisposalDate != nil {
		disposalDate = *req.DisposalDate
	}

	recycled := false
	if req.Recycled != nil {
		recycled = *req.Recycled
	}
	// Recyclable waste counts as recycled from the moment it is logged.
	if wasteType == entity.WasteTypeRecyclable {
		recycled = true
	}

	entry := &entity.WasteEntry{
		Id:                uuid.New(),
		UserId:            userID,
		WasteType:         wasteType,
		WeightKg:          req.WeightKg,
		Description:       req.Description,
		DisposalDate:      disposalDate,
		Recycled:          recycled,
		RecyclingCenterId: req.RecyclingCenterId,
		CreatedAt:         time.Now().UTC(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WasteEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	s.publishEntryRecorded(userID, entry.Id)
	return entryToResponse(entry), nil
}

func (s *wasteService) ListEntries(ctx context.Context, userID uuid.UUID, page, perPage int) (*dto.ListWasteEntriesResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.WasteEntryRepository()

	total, err := repo.Count(ctx, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}

	entries, err := repo.FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "disposal_date", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)
	if err != nil {
		return nil, err
	}

	out := &dto.ListWasteEntriesResponse{
		Entries: make([]dto.WasteEntryResponse, 0, len(entries)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, *entryToResponse(e))
	}
	return out, nil
}

func (s *wasteService) ToggleRecycled(ctx context.Context, userID, entryID uuid.UUID) (*dto.WasteEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.WasteEntryRepository()

	// Ownership is part of the lookup, so another user's entry id behaves
	// exactly like a missing one.
	entry, err := repo.FindOne(ctx, specification.ByID{ID: entryID}, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	entry.Recycled = !entry.Recycled
	now := time.Now().UTC()
	entry.UpdatedAt = &now

	if err := repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.publishEntryRecorded(userID, entry.Id)
	return entryToResponse(entry), nil
}

func (s *wasteService) ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.WasteEntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "disposal_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "waste_type", "weight_kg", "description", "disposal_date", "recycled"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		weight := ""
		if e.WeightKg != nil {
			weight = strconv.FormatFloat(*e.WeightKg, 'f', -1, 64)
		}
		record := []string{
			e.Id.String(),
			string(e.WasteType),
			weight,
			e.Description,
			e.DisposalDate.Format(time.RFC3339),
			strconv.FormatBool(e.Recycled),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func (s *wasteService) GetStatistics(ctx context.Context, userID uuid.UUID) (*dto.StatisticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.WasteEntryRepository().FindAll(ctx, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}

	stats := &dto.StatisticsResponse{}
	byType := make(map[string]*dto.WasteTypeBreakdown)
	monthly := make(map[string]*dto.MonthlyBreakdown)

	for _, e := range entries {
		stats.TotalEntries++
		weight := e.Weight()
		stats.TotalWeightKg += weight

		if e.Recycled {
			stats.RecycledEntries++
			stats.RecycledKg += weight

			switch e.WasteType {
			case entity.WasteTypeRecyclable:
				stats.Impact.Co2SavedKg += weight * co2FactorRecyclable
				stats.Impact.TreesSaved += weight / 1000 * treesPerTonne
			case entity.WasteTypeOrganic:
				stats.Impact.Co2SavedKg += weight * co2FactorOrganic
			case entity.WasteTypeHazardous:
				stats.Impact.Co2SavedKg += weight * co2FactorHazardous
			default:
				stats.Impact.Co2SavedKg += weight * co2FactorOther
			}
		} else if e.WasteType == entity.WasteTypeRecyclable {
			// What the user could still save by recycling this entry.
			stats.PotentialImpact.Co2SavedKg += weight * co2FactorRecyclable
			stats.PotentialImpact.TreesSaved += weight / 1000 * treesPerTonne
		}

		key := string(e.WasteType)
		if byType[key] == nil {
			byType[key] = &dto.WasteTypeBreakdown{WasteType: key}
		}
		byType[key].Count++
		byType[key].WeightKg += weight

		monthKey := e.DisposalDate.Format("2006-01")
		if monthly[monthKey] == nil {
			monthly[monthKey] = &dto.MonthlyBreakdown{Month: monthKey}
		}
		monthly[monthKey].Count++
		monthly[monthKey].WeightKg += weight
	}

	if stats.TotalEntries > 0 {
		stats.RecyclingRate = round2(float64(stats.RecycledEntries) / float64(stats.TotalEntries) * 100)
	}
	stats.TotalWeightKg = round2(stats.TotalWeightKg)
	stats.RecycledKg = round2(stats.RecycledKg)
	stats.Impact.Co2SavedKg = round2(stats.Impact.Co2SavedKg)
	stats.Impact.TreesSaved = round2(stats.Impact.TreesSaved)
	stats.PotentialImpact.Co2SavedKg = round2(stats.PotentialImpact.Co2SavedKg)
	stats.PotentialImpact.TreesSaved = round2(stats.PotentialImpact.TreesSaved)

	for _, b := range byType {
		b.WeightKg = round2(b.WeightKg)
		stats.ByType = append(stats.ByType, *b)
	}
	sort.Slice(stats.ByType, func(i, j int) bool { return stats.ByType[i].WasteType < stats.ByType[j].WasteType })

	for _, m := range monthly {
		m.WeightKg = round2(m.WeightKg)
		stats.Monthly = append(stats.Monthly, *m)
	}
	sort.Slice(stats.Monthly, func(i, j int) bool { return stats.Monthly[i].Month < stats.Monthly[j].Month })

	return stats, nil
}
