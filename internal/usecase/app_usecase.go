package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"acm_e_letras/internal/domain/entities"
	"acm_e_letras/internal/domain/migration"
	"acm_e_letras/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoDealStatuses   = errors.New("no deal status configured")
	ErrDealNotFound     = errors.New("deal not found")
	ErrStatusNotFound   = errors.New("deal status not found")
	ErrStatusNameTaken  = errors.New("deal status name already exists")
	ErrStatusInUse      = errors.New("deal status has deals in it")
	ErrMaterialNotFound = errors.New("material not found")
	ErrQuoteNotFound    = errors.New("quote not found")
)

// IAppUseCase exposes every Domain Store operation consumed by the HTTP
// layer. The app usecase is the single owner of the live AppData aggregate;
// all reads are deep copies and all writes go through atomic mutators that
// persist the serialized aggregate after each change.

type IAppUseCase interface {
	Data() entities.AppData

	AddDeal(ctx context.Context, title, clientName string, value float64) (entities.Deal, error)
	UpdateDealStatus(ctx context.Context, id, statusID string) (entities.Deal, error)
	DeleteDeal(ctx context.Context, id string) error

	AddDealStatus(ctx context.Context, name string) (entities.DealStatus, error)
	UpdateStatusDetails(ctx context.Context, id string, name, color *string) (entities.DealStatus, error)
	DeleteDealStatus(ctx context.Context, id string) error

	AddMaterial(ctx context.Context, name string, price float64, pricingType entities.PricingType) (entities.Material, error)
	UpdateMaterial(ctx context.Context, id string, name *string, price *float64, pricingType *entities.PricingType) (entities.Material, error)
	DeleteMaterial(ctx context.Context, id string) error

	AddQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, updated entities.Quote) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error

	ExportData() ([]byte, string, error)
	ImportData(ctx context.Context, raw []byte) error
	ResetData(ctx context.Context) error
	SetCompanyLogo(ctx context.Context, dataURI string) error
}

type AppUseCase struct {
	mu    sync.Mutex
	data  entities.AppData
	store interfaces.ISnapshotStore
	log   *zap.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

var _ IAppUseCase = (*AppUseCase)(nil)

// NewAppUseCase loads the persisted snapshot through the migration layer. A
// missing snapshot yields the seed aggregate; an unreadable one is logged and
// also falls back to the seed (a corrupt store must never prevent startup).
func NewAppUseCase(ctx context.Context, store interfaces.ISnapshotStore, log *zap.Logger) (*AppUseCase, error) {
	raw, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	data := entities.NewAppData()
	if len(raw) > 0 {
		migrated, err := migration.Normalize(raw)
		if err != nil {
			log.Warn("stored snapshot unreadable, starting from seed data", zap.Error(err))
		} else {
			data = migrated
		}
	}

	return &AppUseCase{
		data:  data,
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

// Data returns a deep copy of the aggregate. Nothing outside the usecase ever
// holds a reference into the live graph.
func (u *AppUseCase) Data() entities.AppData {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.data.Clone()
}

// StartWatch merges snapshots written by other instances by replacing the
// in-memory aggregate wholesale (last write wins, no field merge). Stores
// without change notification make this a no-op.
func (u *AppUseCase) StartWatch(ctx context.Context) error {
	ch, err := u.store.Watch(ctx)
	if err != nil {
		return err
	}
	if ch == nil {
		return nil
	}
	go func() {
		for raw := range ch {
			data, err := migration.Normalize(raw)
			if err != nil {
				u.log.Warn("ignoring unreadable external snapshot", zap.Error(err))
				continue
			}
			u.mu.Lock()
			u.data = data
			u.mu.Unlock()
		}
	}()
	return nil
}

// mutate applies fn to a copy of the aggregate and swaps it in only when fn
// succeeds, so a rejected transform never leaves partial state visible. The
// new aggregate is persisted before the lock is released.
func (u *AppUseCase) mutate(ctx context.Context, fn func(data *entities.AppData) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	u.data = next
	u.persistLocked(ctx)
	return nil
}

// persistLocked writes the serialized aggregate. A failed write only warns:
// the in-memory aggregate stays authoritative and the next successful write
// catches the store up.
func (u *AppUseCase) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(u.data)
	if err != nil {
		u.log.Error("failed to serialize app data", zap.Error(err))
		return
	}
	if err := u.store.Save(ctx, raw); err != nil {
		u.log.Warn("failed to persist app data snapshot", zap.Error(err))
	}
}

// replace swaps the whole aggregate (import/reset) and persists it.
func (u *AppUseCase) replace(ctx context.Context, data entities.AppData) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.data = data
	u.persistLocked(ctx)
}
