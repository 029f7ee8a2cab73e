package contact

import "context"

type Service interface {
	AddContact(ctx context.Context, c Contact) (Contact, error)
	ListContacts(ctx context.Context, p Page) ([]Contact, error)
	GetContact(ctx context.Context, id int64) (Contact, error)
	UpdateContact(ctx context.Context, id int64, p Patch) (Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type Repository interface {
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	FindContacts(ctx context.Context, p Page) ([]Contact, error)
	GetContact(ctx context.Context, id int64) (Contact, error)
	UpdateContact(ctx context.Context, id int64, p Patch) (Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddContact(ctx context.Context, c Contact) (Contact, error) {
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return uc.r.CreateContact(ctx, c)
}

func (uc *Usecase) ListContacts(ctx context.Context, p Page) ([]Contact, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return uc.r.FindContacts(ctx, p)
}

func (uc *Usecase) GetContact(ctx context.Context, id int64) (Contact, error) {
	if id <= 0 {
		return Contact{}, ErrInvalidID
	}
	return uc.r.GetContact(ctx, id)
}

// UpdateContact applies the fields present in p. An empty patch returns the
// stored contact unchanged.
func (uc *Usecase) UpdateContact(ctx context.Context, id int64, p Patch) (Contact, error) {
	if id <= 0 {
		return Contact{}, ErrInvalidID
	}
	if err := p.Validate(); err != nil {
		return Contact{}, err
	}
	if p.IsEmpty() {
		return uc.r.GetContact(ctx, id)
	}
	return uc.r.UpdateContact(ctx, id, p)
}

func (uc *Usecase) DeleteContact(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return uc.r.DeleteContact(ctx, id)
}
