package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// memDB — общее хранилище для фейковых репозиториев, повторяет связи схемы БД.
type memDB struct {
	mu         sync.Mutex
	seq        int64
	categories map[int64]domain.Category
	products   map[int64]domain.Product
	statuses   map[int64]domain.Status
	users      map[int64]domain.User
	orders     map[int64]domain.Order
	items      map[int64]domain.OrderItem
	wishlists  map[int64]domain.Wishlist
	outbox     []*OutboxEvent
	sessions   map[string]int64
}

func newMemDB() *memDB {
	return &memDB{
		seq:        100,
		categories: map[int64]domain.Category{},
		products:   map[int64]domain.Product{},
		statuses: map[int64]domain.Status{
			1: {ID: 1, Name: "pending"},
			2: {ID: 2, Name: "shipped"},
		},
		users:     map[int64]domain.User{},
		orders:    map[int64]domain.Order{},
		items:     map[int64]domain.OrderItem{},
		wishlists: map[int64]domain.Wishlist{},
		sessions:  map[string]int64{},
	}
}

func (m *memDB) nextID() int64 {
	m.seq++
	return m.seq
}

func (m *memDB) addUser(username string) domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := domain.User{ID: m.nextID(), Username: username, Email: username + "@x.com"}
	m.users[u.ID] = u
	return u
}

func (m *memDB) addCategory(title, slug string) domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := domain.Category{ID: m.nextID(), Title: title, Slug: slug}
	m.categories[c.ID] = c
	return c
}

func (m *memDB) addProduct(title string, price int64, categoryID int64) domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := domain.Product{ID: m.nextID(), Title: title, Slug: domain.Slugify(title), Price: price, CategoryID: categoryID}
	m.products[p.ID] = p
	return p
}

func (m *memDB) addWishlist(userID int64, product domain.Product, quantity int64) domain.Wishlist {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := domain.Wishlist{ID: m.nextID(), UserID: userID, Product: product, Quantity: quantity}
	m.wishlists[w.ID] = w
	return w
}

func (m *memDB) orderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// CATEGORY

type fakeCategoryRepo struct{ db *memDB }

func (r *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.categories {
		if existing.Slug == c.Slug {
			return nil, e.ErrCategorySlugTaken
		}
	}

	created := *c
	created.ID = r.db.nextID()
	r.db.categories[created.ID] = created
	return &created, nil
}

func (r *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, e.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.Category, 0, len(r.db.categories))
	for _, c := range r.db.categories {
		res = append(res, c)
	}
	slices.SortFunc(res, func(a, b domain.Category) int { return strings.Compare(a.Title, b.Title) })
	return res, nil
}

func (r *fakeCategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, c := range r.db.categories {
		if c.Slug != slug {
			continue
		}
		delete(r.db.categories, id)
		for pid, p := range r.db.products {
			if p.CategoryID == id {
				delete(r.db.products, pid)
				for iid, item := range r.db.items {
					if item.Product.ID == pid {
						delete(r.db.items, iid)
					}
				}
			}
		}
		return nil
	}
	return e.ErrCategoryNotFound
}

// PRODUCT

type fakeProductRepo struct {
	db        *memDB
	createErr error
}

func (r *fakeProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *p
	created.ID = r.db.nextID()
	r.db.products[created.ID] = created
	return &created, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) List(_ context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	contains := func(s string, sub *string) bool {
		return sub == nil || strings.Contains(strings.ToLower(s), strings.ToLower(*sub))
	}

	res := make([]domain.Product, 0)
	for _, p := range r.db.products {
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if !contains(p.Title, f.Title) || !contains(p.Description, f.Description) {
			continue
		}
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b domain.Product) int { return strings.Compare(a.Title, b.Title) })
	return res, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return r.List(ctx, domain.ProductFilter{CategoryID: &categoryID})
}

func (r *fakeProductRepo) Update(_ context.Context, p *domain.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.products[p.ID]; !ok {
		return e.ErrProductNotFound
	}
	r.db.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(r.db.products, id)
	return nil
}

// STATUS

type fakeStatusRepo struct{ db *memDB }

func (r *fakeStatusRepo) GetByID(_ context.Context, id int64) (*domain.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.statuses[id]
	if !ok {
		return nil, e.ErrStatusNotFound
	}
	return &s, nil
}

func (r *fakeStatusRepo) List(_ context.Context) ([]domain.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.Status, 0, len(r.db.statuses))
	for _, s := range r.db.statuses {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b domain.Status) int { return int(a.ID - b.ID) })
	return res, nil
}

func (r *fakeStatusRepo) Create(_ context.Context, s *domain.Status) (*domain.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *s
	created.ID = r.db.nextID()
	r.db.statuses[created.ID] = created
	return &created, nil
}

// ORDER

type fakeOrderRepo struct {
	db            *memDB
	createItemErr error
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *o
	created.ID = r.db.nextID()
	created.CreatedAt = time.Now()
	r.db.orders[created.ID] = created
	return &created, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	o, ok := r.db.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	o.Status = r.db.statuses[o.Status.ID]
	return &o, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.Order, 0)
	for _, o := range r.db.orders {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	slices.SortFunc(res, func(a, b domain.Order) int { return int(a.ID - b.ID) })
	return res, nil
}

func (r *fakeOrderRepo) UpdateTotal(_ context.Context, id int64, total int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	o, ok := r.db.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	o.Total = total
	r.db.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, statusID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	o, ok := r.db.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	o.Status = r.db.statuses[statusID]
	r.db.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) CreateItem(_ context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if r.createItemErr != nil {
		return nil, r.createItemErr
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *item
	created.ID = r.db.nextID()
	r.db.items[created.ID] = created
	return &created, nil
}

func (r *fakeOrderRepo) ListItems(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.OrderItem, 0)
	for _, item := range r.db.items {
		if item.OrderID == orderID {
			res = append(res, item)
		}
	}
	slices.SortFunc(res, func(a, b domain.OrderItem) int { return int(a.ID - b.ID) })
	return res, nil
}

func (r *fakeOrderRepo) ListAllItems(_ context.Context) ([]domain.OrderItemView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.OrderItemView, 0, len(r.db.items))
	for _, item := range r.db.items {
		res = append(res, domain.OrderItemView{OrderItem: item, Order: r.db.orders[item.OrderID]})
	}
	slices.SortFunc(res, func(a, b domain.OrderItemView) int { return int(a.ID - b.ID) })
	return res, nil
}

// WISHLIST

type fakeWishlistRepo struct{ db *memDB }

func (r *fakeWishlistRepo) GetByID(_ context.Context, id int64) (*domain.Wishlist, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, ok := r.db.wishlists[id]
	if !ok {
		return nil, e.ErrWishlistNotFound
	}
	// товар всегда актуальный, как при JOIN
	if p, ok := r.db.products[w.Product.ID]; ok {
		w.Product = p
	}
	return &w, nil
}

func (r *fakeWishlistRepo) ListByUser(_ context.Context, userID int64) ([]domain.Wishlist, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.Wishlist, 0)
	for _, w := range r.db.wishlists {
		if w.UserID == userID {
			res = append(res, w)
		}
	}
	slices.SortFunc(res, func(a, b domain.Wishlist) int { return int(a.ID - b.ID) })
	return res, nil
}

func (r *fakeWishlistRepo) Upsert(_ context.Context, w *domain.Wishlist) (*domain.Wishlist, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, existing := range r.db.wishlists {
		if existing.UserID == w.UserID && existing.Product.ID == w.Product.ID {
			existing.Quantity = w.Quantity
			r.db.wishlists[id] = existing
			return &existing, nil
		}
	}

	created := *w
	created.ID = r.db.nextID()
	r.db.wishlists[created.ID] = created
	return &created, nil
}

func (r *fakeWishlistRepo) UpdateQuantity(_ context.Context, id int64, quantity int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, ok := r.db.wishlists[id]
	if !ok {
		return e.ErrWishlistNotFound
	}
	w.Quantity = quantity
	r.db.wishlists[id] = w
	return nil
}

func (r *fakeWishlistRepo) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.wishlists[id]; !ok {
		return e.ErrWishlistNotFound
	}
	delete(r.db.wishlists, id)
	return nil
}

// USER / SESSION

type fakeUserRepo struct{ db *memDB }

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Username == u.Username {
			return nil, e.ErrUsernameTaken
		}
	}

	created := *u
	created.ID = r.db.nextID()
	r.db.users[created.ID] = created
	return &created, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, e.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if errors.Is(err, e.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := make([]domain.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		res = append(res, u)
	}
	slices.SortFunc(res, func(a, b domain.User) int { return int(a.ID - b.ID) })
	return res, nil
}

type fakeSessionRepo struct{ db *memDB }

func (r *fakeSessionRepo) Create(_ context.Context, sessionID string, userID int64, _ time.Duration) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[sessionID] = userID
	return nil
}

func (r *fakeSessionRepo) GetUserID(_ context.Context, sessionID string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, ok := r.db.sessions[sessionID]
	if !ok {
		return 0, e.ErrNotLoggedIn
	}
	return id, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, sessionID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, sessionID)
	return nil
}

// OUTBOX

type fakeOutboxRepo struct{ db *memDB }

func (r *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *event
	created.ID = r.db.nextID()
	r.db.outbox = append(r.db.outbox, &created)
	return &created, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error { return nil }

func (r *fakeOutboxRepo) MarkAsFailed(context.Context, int64, int) error { return nil }

func (r *fakeOutboxRepo) events() []*OutboxEvent {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return slices.Clone(r.db.outbox)
}

// INFRASTRUCTURE

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// rollbackTx возвращает memDB в состояние до fn, если fn завершилась ошибкой.
// Счётчик id не откатывается, как и последовательности в PostgreSQL.
type rollbackTx struct{ db *memDB }

func (t rollbackTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := t.db.snapshot()
	if err := fn(ctx); err != nil {
		t.db.restore(snap)
		return err
	}

	return nil
}

type memSnapshot struct {
	categories map[int64]domain.Category
	products   map[int64]domain.Product
	statuses   map[int64]domain.Status
	users      map[int64]domain.User
	orders     map[int64]domain.Order
	items      map[int64]domain.OrderItem
	wishlists  map[int64]domain.Wishlist
	outbox     []*OutboxEvent
}

func (m *memDB) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return memSnapshot{
		categories: maps.Clone(m.categories),
		products:   maps.Clone(m.products),
		statuses:   maps.Clone(m.statuses),
		users:      maps.Clone(m.users),
		orders:     maps.Clone(m.orders),
		items:      maps.Clone(m.items),
		wishlists:  maps.Clone(m.wishlists),
		outbox:     slices.Clone(m.outbox),
	}
}

func (m *memDB) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.categories = s.categories
	m.products = s.products
	m.statuses = s.statuses
	m.users = s.users
	m.orders = s.orders
	m.items = s.items
	m.wishlists = s.wishlists
	m.outbox = s.outbox
}

type fakeCache struct {
	mu      sync.Mutex
	items   map[int64]domain.Product
	deleted []int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[int64]domain.Product{}}
}

func (c *fakeCache) GetProducts(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := make(map[int64]domain.Product)
	for _, id := range ids {
		if p, ok := c.items[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (c *fakeCache) SetProducts(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range products {
		c.items[p.ID] = p
	}
	return nil
}

func (c *fakeCache) DeleteProducts(_ context.Context, ids []int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		delete(c.items, id)
	}
	c.deleted = append(c.deleted, ids...)
	return nil
}

func (c *fakeCache) deletedIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.deleted)
}

type fakeImages struct {
	mu        sync.Mutex
	uploaded  []string
	cleaned   []string
	uploadErr error
}

func (f *fakeImages) UploadImage(_ context.Context, req *UploadImageReq) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := fmt.Sprintf("%s/%s", req.Prefix, req.Image.Name)
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, keys...)
}

type fakeEncoder struct{}

func (fakeEncoder) EncodeOrderEvent(event *OrderEvent) ([]byte, error) {
	return []byte(fmt.Sprintf("%s:%d:%d", event.EventType, event.OrderID, event.Total)), nil
}

type fakeMetrics struct {
	mu       sync.Mutex
	created  int
	statuses []string
}

func (m *fakeMetrics) ObserveOrderCreated(int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *fakeMetrics) ObserveStatusChanged(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, status)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash string, password string) bool { return hash == "hashed:"+password }

func nopLogger() logger.Logger { return logger.Nop() }
