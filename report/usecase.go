package report

import "context"

type Service interface {
	ContactsPerGroup(ctx context.Context) ([]Entry, error)
}

// Repository returns one entry per group, zero-member groups included, in
// group creation order.
type Repository interface {
	GroupContactCounts(ctx context.Context) ([]Entry, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ContactsPerGroup(ctx context.Context) ([]Entry, error) {
	entries, err := uc.r.GroupContactCounts(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(entries), nil
}
