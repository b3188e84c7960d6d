// Package repotest 以記憶體實作 repository 介面，供測試使用
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"evdealer/models"
	"evdealer/repository"
)

var (
	_ repository.VehicleRepository   = (*Vehicles)(nil)
	_ repository.CustomerRepository  = (*Customers)(nil)
	_ repository.PaymentRepository   = (*Payments)(nil)
	_ repository.OrderRepository     = (*Orders)(nil)
	_ repository.DealerRepository    = (*Dealers)(nil)
	_ repository.PromotionRepository = (*Promotions)(nil)
	_ repository.StaffRepository     = (*Staff)(nil)
)

type Vehicles struct {
	Items []models.Vehicle
	Err   error
}

func (f *Vehicles) List(ctx context.Context) ([]models.Vehicle, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]models.Vehicle, len(f.Items))
	copy(out, f.Items)
	return out, nil
}

func (f *Vehicles) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, v := range f.Items {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *Vehicles) Create(ctx context.Context, v *models.Vehicle) error {
	for _, existing := range f.Items {
		if existing.ID == v.ID {
			return repository.ErrDuplicate
		}
	}
	f.Items = append(f.Items, *v)
	return nil
}

func (f *Vehicles) Update(ctx context.Context, v *models.Vehicle) error {
	for i := range f.Items {
		if f.Items[i].ID == v.ID {
			f.Items[i] = *v
			return nil
		}
	}
	return repository.ErrNotFound
}

type Customers struct {
	Items map[string]models.Customer
	Err   error
}

func NewCustomers(customers ...models.Customer) *Customers {
	f := &Customers{Items: map[string]models.Customer{}}
	for _, c := range customers {
		f.Items[c.ID] = c
	}
	return f
}

func (f *Customers) Search(ctx context.Context, q, salesStaffID string) ([]models.Customer, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	q = strings.ToLower(q)
	out := []models.Customer{}
	for _, c := range f.Items {
		if salesStaffID != "" && c.SalesStaffID != salesStaffID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.FullName), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) && !strings.Contains(c.Phone, q) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (f *Customers) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	c, ok := f.Items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *Customers) Create(ctx context.Context, c *models.Customer) error {
	if err := f.unique(c); err != nil {
		return err
	}
	f.Items[c.ID] = *c
	return nil
}

func (f *Customers) Update(ctx context.Context, c *models.Customer) error {
	if err := f.unique(c); err != nil {
		return err
	}
	f.Items[c.ID] = *c
	return nil
}

func (f *Customers) unique(c *models.Customer) error {
	for id, existing := range f.Items {
		if id != c.ID && (existing.Email == c.Email || existing.Phone == c.Phone) {
			return repository.ErrDuplicate
		}
	}
	return nil
}

type Payments struct {
	mu    sync.Mutex
	Items []models.Payment
}

func (f *Payments) ListByCustomer(ctx context.Context, customerID string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Payment{}
	for _, p := range f.Items {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *Payments) Create(ctx context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Items = append(f.Items, *p)
	return nil
}

type Orders struct {
	Items    map[string]models.Order
	payments *Payments
	Err      error
}

func NewOrders(payments *Payments) *Orders {
	return &Orders{Items: map[string]models.Order{}, payments: payments}
}

func (f *Orders) List(ctx context.Context, customerID string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.Items {
		if customerID == "" || o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *Orders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, ok := f.Items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (f *Orders) CreateWithPayment(ctx context.Context, o *models.Order, p *models.Payment) error {
	if f.Err != nil {
		return f.Err
	}
	f.Items[o.ID] = *o
	if p != nil {
		return f.payments.Create(ctx, p)
	}
	return nil
}

func (f *Orders) Update(ctx context.Context, o *models.Order) error {
	if _, ok := f.Items[o.ID]; !ok {
		return repository.ErrNotFound
	}
	f.Items[o.ID] = *o
	return nil
}

type Dealers struct {
	Items map[string]models.Dealer
}

func NewDealers(dealers ...models.Dealer) *Dealers {
	f := &Dealers{Items: map[string]models.Dealer{}}
	for _, d := range dealers {
		f.Items[d.ID] = d
	}
	return f
}

func (f *Dealers) List(ctx context.Context) ([]models.Dealer, error) {
	out := []models.Dealer{}
	for _, d := range f.Items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Dealers) GetByID(ctx context.Context, id string) (*models.Dealer, error) {
	d, ok := f.Items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (f *Dealers) Create(ctx context.Context, d *models.Dealer) error {
	if _, ok := f.Items[d.ID]; ok {
		return repository.ErrDuplicate
	}
	f.Items[d.ID] = *d
	return nil
}

func (f *Dealers) Update(ctx context.Context, d *models.Dealer) error {
	f.Items[d.ID] = *d
	return nil
}

type Promotions struct {
	Items map[string]models.Promotion
}

func NewPromotions(promotions ...models.Promotion) *Promotions {
	f := &Promotions{Items: map[string]models.Promotion{}}
	for _, p := range promotions {
		f.Items[p.ID] = p
	}
	return f
}

func (f *Promotions) List(ctx context.Context, status string) ([]models.Promotion, error) {
	out := []models.Promotion{}
	for _, p := range f.Items {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *Promotions) GetByID(ctx context.Context, id string) (*models.Promotion, error) {
	p, ok := f.Items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *Promotions) Create(ctx context.Context, p *models.Promotion) error {
	f.Items[p.ID] = *p
	return nil
}

func (f *Promotions) Update(ctx context.Context, p *models.Promotion) error {
	f.Items[p.ID] = *p
	return nil
}

func (f *Promotions) RefreshStatuses(ctx context.Context, today string) (int64, error) {
	var n int64
	for id, p := range f.Items {
		if status := p.StatusOn(today); status != p.Status {
			p.Status = status
			f.Items[id] = p
			n++
		}
	}
	return n, nil
}

type Staff struct {
	Items map[string]models.Staff
	Err   error
}

func NewStaff(staff ...models.Staff) *Staff {
	f := &Staff{Items: map[string]models.Staff{}}
	for _, s := range staff {
		f.Items[s.ID] = s
	}
	return f
}

func (f *Staff) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	s, ok := f.Items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *Staff) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, s := range f.Items {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *Staff) FindByRole(ctx context.Context, role string) (*models.Staff, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, s := range f.Items {
		if s.Role == role {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *Staff) Create(ctx context.Context, s *models.Staff) error {
	f.Items[s.ID] = *s
	return nil
}
