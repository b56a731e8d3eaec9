package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"DocTrackerGo/config"
	"DocTrackerGo/models"
	"DocTrackerGo/store"
	"DocTrackerGo/utils"

	"gorm.io/datatypes"
)

const DefaultRecentLimit = 5

// EntryService owns entry CRUD and is the entry source for the reports.
type EntryService struct {
	entries store.Store[models.Entry]
}

func NewEntryService(entries store.Store[models.Entry]) *EntryService {
	return &EntryService{entries: entries}
}

// Create stores a new entry owned by actor. Admins may attribute the entry
// to another processor through req.Username; for everybody else the display
// name is their own.
func (s *EntryService) Create(ctx context.Context, actor *models.User, req models.CreateEntryRequest, now time.Time) (*models.Entry, error) {
	date, err := models.ParseDay(req.Date)
	if err != nil {
		return nil, validationError("%v", err)
	}
	if !req.DayType.Valid() {
		return nil, validationError("dayType must be one of Half Day, Full Day, PTO")
	}
	if req.Rows == nil {
		return nil, validationError("date, dayType, and rows are required")
	}

	displayName := actor.GetDisplayName()
	if actor.IsAdmin && strings.TrimSpace(req.Username) != "" {
		displayName = strings.TrimSpace(req.Username)
	}

	entry := &models.Entry{
		ID:                 utils.GenerateID(),
		OwnerID:            actor.ID,
		DisplayName:        displayName,
		Date:               date,
		DayType:            req.DayType,
		ProductiveLines:    datatypes.JSONSlice[models.ProductiveLine](req.Rows),
		NonProductiveLines: datatypes.JSONSlice[models.NonProductiveLine](req.NonProductiveRows),
		CreatedAt:          now.UTC(),
	}
	if entry.NonProductiveLines == nil {
		entry.NonProductiveLines = datatypes.JSONSlice[models.NonProductiveLine]{}
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	config.Logger.Infow("entry created",
		"entryID", entry.ID,
		"userID", actor.ID,
		"displayName", displayName,
		"date", date.Format(dayKeyLayout),
	)
	return entry, nil
}

// List returns the user's entries, newest first.
func (s *EntryService) List(ctx context.Context, userID string, q models.ListEntriesQuery) ([]models.Entry, error) {
	query := store.Query{
		Conditions: []store.Condition{store.Where(models.FieldOwnerID, store.Eq, userID)},
		SortField:  models.FieldDate,
		SortDesc:   true,
		Limit:      q.Limit,
		Skip:       q.Skip,
	}
	if q.StartDate != "" {
		start, err := models.ParseDay(q.StartDate)
		if err != nil {
			return nil, validationError("%v", err)
		}
		query.Conditions = append(query.Conditions, store.Where(models.FieldDate, store.Gte, start))
	}
	if q.EndDate != "" {
		end, err := models.ParseDay(q.EndDate)
		if err != nil {
			return nil, validationError("%v", err)
		}
		query.Conditions = append(query.Conditions, store.Where(models.FieldDate, store.Lte, end))
	}
	return s.entries.FindAll(ctx, query)
}

func (s *EntryService) Recent(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.List(ctx, userID, models.ListEntriesQuery{Limit: limit})
}

// ListAll returns every user's entries, newest first.
func (s *EntryService) ListAll(ctx context.Context) ([]models.Entry, error) {
	return s.entries.FindAll(ctx, store.Query{SortField: models.FieldDate, SortDesc: true})
}

// Get loads an entry the user owns.
func (s *EntryService) Get(ctx context.Context, entryID, userID string) (*models.Entry, error) {
	entry, err := s.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OwnerID != userID {
		return nil, fmt.Errorf("%w: unauthorized to access this entry", ErrForbidden)
	}
	return entry, nil
}

// Update changes the mutable parts of an entry. Owner and date stay as created.
func (s *EntryService) Update(ctx context.Context, entryID, userID string, req models.UpdateEntryRequest) (*models.Entry, error) {
	if req.Empty() {
		return nil, validationError("please provide data to update")
	}
	if req.DayType != nil && !req.DayType.Valid() {
		return nil, validationError("dayType must be one of Half Day, Full Day, PTO")
	}
	if _, err := s.Get(ctx, entryID, userID); err != nil {
		if errors.Is(err, ErrForbidden) {
			return nil, fmt.Errorf("%w: unauthorized to update this entry", ErrForbidden)
		}
		return nil, err
	}

	fields := map[string]any{}
	if req.DayType != nil {
		fields[models.FieldDayType] = *req.DayType
	}
	if req.Rows != nil {
		fields[models.FieldProductiveLines] = datatypes.JSONSlice[models.ProductiveLine](*req.Rows)
	}
	if req.NonProductiveRows != nil {
		fields[models.FieldNonProductiveLines] = datatypes.JSONSlice[models.NonProductiveLine](*req.NonProductiveRows)
	}

	entry, err := s.entries.Update(ctx, entryID, fields)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, entryID, userID string) error {
	if _, err := s.Get(ctx, entryID, userID); err != nil {
		if errors.Is(err, ErrForbidden) {
			return fmt.Errorf("%w: unauthorized to delete this entry", ErrForbidden)
		}
		return err
	}
	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	config.Logger.Infow("entry deleted", "entryID", entryID, "userID", userID)
	return nil
}

// FetchEntries implements EntryFetcher: the user's entries dated within
// [start, end], oldest first.
func (s *EntryService) FetchEntries(ctx context.Context, userID string, start, end time.Time) ([]models.Entry, error) {
	return s.entries.FindAll(ctx, store.Query{
		Conditions: []store.Condition{
			store.Where(models.FieldOwnerID, store.Eq, userID),
			store.Where(models.FieldDate, store.Gte, start.UTC()),
			store.Where(models.FieldDate, store.Lte, end.UTC()),
		},
		SortField: models.FieldDate,
	})
}

// FetchAllEntries is FetchEntries across every user.
func (s *EntryService) FetchAllEntries(ctx context.Context, start, end time.Time) ([]models.Entry, error) {
	return s.entries.FindAll(ctx, store.Query{
		Conditions: []store.Condition{
			store.Where(models.FieldDate, store.Gte, start.UTC()),
			store.Where(models.FieldDate, store.Lte, end.UTC()),
		},
		SortField: models.FieldDate,
	})
}
