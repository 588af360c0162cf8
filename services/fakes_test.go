package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/repository"
)

// In-memory fakes implementing the repository interfaces. They mirror the
// constraints the real schema enforces: one cart line per (user, product),
// unique usernames and emails.

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   uint
	products map[uint]models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]models.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[product.ID]; !ok {
		return repository.ErrNotFound
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	return nil, nil
}

type fakeCartRepo struct {
	mu     sync.Mutex
	nextID uint
	lines  []models.CartLine
}

func (f *fakeCartRepo) Upsert(_ context.Context, line *models.CartLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.lines {
		if f.lines[i].UserID == line.UserID && f.lines[i].ProductID == line.ProductID {
			// Conflict keeps the row's identity and original added_at.
			line.ID = f.lines[i].ID
			line.AddedAt = f.lines[i].AddedAt
			f.lines[i] = *line
			return nil
		}
	}
	f.nextID++
	line.ID = f.nextID
	f.lines = append(f.lines, *line)
	return nil
}

func (f *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]models.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CartLine
	for _, l := range f.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out, nil
}

func (f *fakeCartRepo) removeByIDs(ids []uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keep := f.lines[:0]
	for _, l := range f.lines {
		remove := false
		for _, id := range ids {
			if l.ID == id {
				remove = true
				break
			}
		}
		if !remove {
			keep = append(keep, l)
		}
	}
	f.lines = keep
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	carts     *fakeCartRepo
	nextID    uint
	orders    []models.Order
	failPlace bool
}

func (f *fakeOrderRepo) PlaceFromCart(ctx context.Context, order *models.Order) error {
	if f.failPlace {
		return errors.New("storage unavailable")
	}
	lines, err := f.carts.ListByUser(ctx, order.UserID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return repository.ErrEmptyCart
	}

	var total int64
	lineIDs := make([]uint, 0, len(lines))
	for _, l := range lines {
		total += l.Price
		lineIDs = append(lineIDs, l.ID)
	}
	order.TotalPrice = total

	f.mu.Lock()
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, *order)
	f.mu.Unlock()
	f.carts.removeByIDs(lineIDs)
	return nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderedAt.After(out[j].OrderedAt) })
	return out, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uint) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, status models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UsernameOrEmailTaken(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []models.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment.ID = uint(len(f.comments) + 1)
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) ListByProduct(_ context.Context, productID uint) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.comments {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}
