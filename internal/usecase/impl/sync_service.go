package impl

import (
	"context"
	"log/slog"
	"sync"

	"nexstock/internal/domain/entity"
	domainerrors "nexstock/internal/domain/errors"
	"nexstock/internal/domain/repository"
	"nexstock/internal/usecase"

	"go.uber.org/fx"
)

// syncService implements the CollectionSyncUsecase interface. It owns one
// standing store query per organization and fans snapshots out to any
// number of subscribers. The canonical list is replaced wholesale on every
// snapshot; nothing mutates it in place.
type syncService struct {
	itemRepo repository.InventoryRepository
	logger   *slog.Logger

	mu    sync.Mutex
	feeds map[string]*orgFeed
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	ItemRepo repository.InventoryRepository
	Logger   *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.CollectionSyncUsecase {
	return &syncService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
		feeds:    make(map[string]*orgFeed),
	}
}

// orgFeed is the fan-out point for one organization's live query.
type orgFeed struct {
	organizationID string
	stream         repository.ItemSnapshotStream
	cancel         context.CancelFunc

	mu        sync.Mutex
	subs      map[*subscriber]struct{}
	latest    []entity.InventoryItem
	hasLatest bool
	dead      bool
}

type subscriber struct {
	ch chan []entity.InventoryItem
}

func (s *syncService) Subscribe(ctx context.Context, organizationID string) (*usecase.ItemSubscription, error) {
	s.mu.Lock()
	feed, ok := s.feeds[organizationID]
	if !ok {
		var err error
		feed, err = s.openFeed(organizationID)
		if err != nil {
			s.mu.Unlock()

			return nil, domainerrors.ErrStoreSubscription.WithDetails(err.Error())
		}
		s.feeds[organizationID] = feed
	}
	s.mu.Unlock()

	sub := &subscriber{ch: make(chan []entity.InventoryItem, 1)}

	feed.mu.Lock()
	if feed.dead {
		feed.mu.Unlock()

		return nil, domainerrors.ErrStoreSubscription.WrapMessage("live feed already closed")
	}
	feed.subs[sub] = struct{}{}
	if feed.hasLatest {
		sub.ch <- feed.latest
	}
	feed.mu.Unlock()

	return usecase.NewItemSubscription(sub.ch, func() {
		s.detach(feed, sub)
	}), nil
}

func (s *syncService) Snapshot(ctx context.Context, organizationID string) ([]entity.InventoryItem, error) {
	s.mu.Lock()
	feed, ok := s.feeds[organizationID]
	s.mu.Unlock()

	if ok {
		feed.mu.Lock()
		if feed.hasLatest {
			items := feed.latest
			feed.mu.Unlock()

			return items, nil
		}
		feed.mu.Unlock()
	}

	items, err := s.itemRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, domainerrors.ErrStoreRead.WithDetails(err.Error())
	}

	return items, nil
}

// openFeed starts the standing query and its pump goroutine. Caller holds
// s.mu.
func (s *syncService) openFeed(organizationID string) (*orgFeed, error) {
	feedCtx, cancel := context.WithCancel(context.Background())

	stream, err := s.itemRepo.Watch(feedCtx, organizationID)
	if err != nil {
		cancel()

		return nil, err
	}

	feed := &orgFeed{
		organizationID: organizationID,
		stream:         stream,
		cancel:         cancel,
		subs:           make(map[*subscriber]struct{}),
	}

	s.logger.Info("Opened live inventory feed", slog.String("organizationID", organizationID))
	go s.pump(feedCtx, feed)

	return feed, nil
}

// pump republishes every snapshot to the feed's subscribers. A stream error
// closes the feed: subscribers stop receiving updates and must resubscribe,
// there is no retry layer here.
func (s *syncService) pump(ctx context.Context, feed *orgFeed) {
	for {
		items, err := feed.stream.Next(ctx)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn("Live inventory feed interrupted",
					slog.String("organizationID", feed.organizationID),
					slog.Any("error", err),
				)
			}
			s.closeFeed(feed)

			return
		}

		feed.broadcast(items)
	}
}

// broadcast replaces each subscriber's pending snapshot: a consumer that
// missed an intermediate state only ever observes the most recent one.
func (f *orgFeed) broadcast(items []entity.InventoryItem) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.dead {
		return
	}

	f.latest = items
	f.hasLatest = true

	for sub := range f.subs {
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- items:
		default:
		}
	}
}

// detach removes one subscriber; the last one out tears down the standing
// query. Delivery is serialized with f.mu, so nothing is sent after the
// channel closes.
func (s *syncService) detach(feed *orgFeed, sub *subscriber) {
	feed.mu.Lock()
	if _, ok := feed.subs[sub]; !ok {
		feed.mu.Unlock()

		return
	}
	delete(feed.subs, sub)
	close(sub.ch)
	empty := len(feed.subs) == 0
	feed.mu.Unlock()

	if empty {
		s.mu.Lock()
		if s.feeds[feed.organizationID] == feed {
			delete(s.feeds, feed.organizationID)
		}
		s.mu.Unlock()

		feed.cancel()
		feed.stream.Stop()
		s.logger.Info("Closed live inventory feed", slog.String("organizationID", feed.organizationID))
	}
}

// closeFeed shuts every subscriber channel after a stream failure.
func (s *syncService) closeFeed(feed *orgFeed) {
	s.mu.Lock()
	if s.feeds[feed.organizationID] == feed {
		delete(s.feeds, feed.organizationID)
	}
	s.mu.Unlock()

	feed.mu.Lock()
	feed.dead = true
	for sub := range feed.subs {
		delete(feed.subs, sub)
		close(sub.ch)
	}
	feed.mu.Unlock()

	feed.cancel()
	feed.stream.Stop()
}
