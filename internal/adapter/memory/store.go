package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

// Store is an in-process LedgerRepository. Every campaign has its own
// mutex: writes that touch a campaign or its submissions hold it for the
// whole read-modify-write, so approvals on one campaign serialise while
// other campaigns proceed. mu only guards the maps themselves.
type Store struct {
	mu sync.RWMutex

	users       map[string]domain.User
	campaigns   map[string]domain.Campaign
	locks       map[string]*sync.Mutex
	submissions map[string]domain.Submission

	campaignOrder   []string
	submissionOrder []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]domain.User),
		campaigns:   make(map[string]domain.Campaign),
		locks:       make(map[string]*sync.Mutex),
		submissions: make(map[string]domain.Submission),
	}
}

var _ port.LedgerRepository = (*Store)(nil)

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("%w: user %s already exists", domain.ErrInvalidInput, user.ID)
	}
	s.users[user.ID] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) CountUsers(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.ID]; exists {
		return fmt.Errorf("%w: campaign %s already exists", domain.ErrInvalidInput, campaign.ID)
	}
	s.campaigns[campaign.ID] = campaign
	s.locks[campaign.ID] = &sync.Mutex{}
	s.campaignOrder = append(s.campaignOrder, campaign.ID)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListCampaigns returns matching campaigns, newest first.
func (s *Store) ListCampaigns(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Campaign, 0, len(s.campaignOrder))
	for _, id := range slices.Backward(s.campaignOrder) {
		c := s.campaigns[id]
		if filter.CreatorID != "" && c.CreatorID != filter.CreatorID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		items = append(items, c)
	}
	return items, nil
}

func (s *Store) UpdateCampaign(_ context.Context, id string, mutate port.CampaignMutation) (*domain.Campaign, error) {
	lock, err := s.campaignLock(id)
	if err != nil {
		return nil, err
	}
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	c := s.campaigns[id]
	s.mu.RUnlock()

	if err = mutate(&c); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.campaigns[id] = c
	s.mu.Unlock()
	return &c, nil
}

func (s *Store) CreateSubmission(_ context.Context, submission domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[submission.CampaignID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, submission.CampaignID)
	}
	if _, exists := s.submissions[submission.ID]; exists {
		return fmt.Errorf("%w: submission %s already exists", domain.ErrInvalidInput, submission.ID)
	}
	s.submissions[submission.ID] = submission
	s.submissionOrder = append(s.submissionOrder, submission.ID)
	return nil
}

func (s *Store) GetSubmission(_ context.Context, id string) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

// ListSubmissions returns matching submissions in insertion order.
func (s *Store) ListSubmissions(_ context.Context, filter port.SubmissionFilter) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Submission, 0, len(s.submissionOrder))
	for _, id := range s.submissionOrder {
		sub := s.submissions[id]
		if filter.CampaignID != "" && sub.CampaignID != filter.CampaignID {
			continue
		}
		if filter.ClipperID != "" && sub.ClipperID != filter.ClipperID {
			continue
		}
		if filter.CreatorID != "" && s.campaigns[sub.CampaignID].CreatorID != filter.CreatorID {
			continue
		}
		if filter.Status != "" && sub.Status != filter.Status {
			continue
		}
		items = append(items, sub)
	}
	return items, nil
}

func (s *Store) ReviewSubmission(_ context.Context, id string, review port.ReviewFunc) (*port.ReviewResult, error) {
	s.mu.RLock()
	sub, ok := s.submissions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSubmissionNotFound, id)
	}

	lock, err := s.campaignLock(sub.CampaignID)
	if err != nil {
		return nil, err
	}
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the campaign lock: another review may have committed
	// between the lookup above and acquiring the lock.
	s.mu.RLock()
	sub = s.submissions[id]
	c := s.campaigns[sub.CampaignID]
	s.mu.RUnlock()

	if err = review(&c, &sub); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.campaigns[c.ID] = c
	s.submissions[sub.ID] = sub
	s.mu.Unlock()
	return &port.ReviewResult{Campaign: c, Submission: sub}, nil
}

func (s *Store) campaignLock(id string) (*sync.Mutex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lock, ok := s.locks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, id)
	}
	return lock, nil
}
