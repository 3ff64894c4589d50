package quiz

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/wordquiz/internal/learning"
	"github.com/at-ishikawa/wordquiz/internal/scoring"
	"github.com/at-ishikawa/wordquiz/internal/statistics"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// DefaultProgressDays is the report range used when none is given.
const DefaultProgressDays = 7

// Repositories groups the storage a Service reads and writes.
type Repositories struct {
	Words    vocabulary.WordRepository
	Weights  learning.WeightRepository
	Attempts learning.AttemptRepository
	Recorder learning.Recorder
}

// Options tunes a Service. Zero values use the defaults.
type Options struct {
	// InitialWeight is given to words the learner has never seen. Defaults to the policy floor.
	InitialWeight float64
	// InitBatchSize is the number of weights initialized per statement.
	InitBatchSize int
	Now           func() time.Time
}

// Service holds no per-learner state and is safe for concurrent use.
type Service struct {
	repos         Repositories
	policy        scoring.Policy
	src           scoring.Source
	initialWeight float64
	initBatchSize int
	now           func() time.Time
}

func NewService(repos Repositories, policy scoring.Policy, src scoring.Source, opts Options) *Service {
	if src == nil {
		src = scoring.NewSource()
	}
	initialWeight := max(opts.InitialWeight, policy.Floor)
	initBatchSize := opts.InitBatchSize
	if initBatchSize <= 0 {
		initBatchSize = learning.DefaultBatchSize
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repos:         repos,
		policy:        policy,
		src:           src,
		initialWeight: initialWeight,
		initBatchSize: initBatchSize,
		now:           now,
	}
}

// NextQuestion picks the learner's next word by weight.
// Words the learner has no weight for yet are initialized first.
func (s *Service) NextQuestion(ctx context.Context, learnerID uuid.UUID) (Question, error) {
	pool, err := s.loadPool(ctx, learnerID)
	if err != nil {
		return Question{}, err
	}
	if len(pool) == 0 {
		return Question{}, ErrNoWords
	}

	selected, err := scoring.SelectNext(pool, s.src)
	if err != nil {
		return Question{}, fmt.Errorf("scoring.SelectNext(%d candidates) > %w", len(pool), err)
	}
	slog.Default().Debug("selected a word",
		"learnerID", learnerID,
		"wordID", selected.Word.ID,
		"weight", selected.Weight,
		"poolSize", len(pool))
	return newQuestion(selected, s.src), nil
}

// loadPool returns every visible word with its weight, ordered by word ID.
func (s *Service) loadPool(ctx context.Context, learnerID uuid.UUID) ([]scoring.Candidate, error) {
	var (
		words   []vocabulary.Word
		weights []learning.WordWeight
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		words, err = s.repos.Words.FindVisibleTo(gctx, learnerID)
		if err != nil {
			return fmt.Errorf("words.FindVisibleTo(%s) > %w", learnerID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		weights, err = s.repos.Weights.FindByLearner(gctx, learnerID)
		if err != nil {
			return fmt.Errorf("weights.FindByLearner(%s) > %w", learnerID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byWord := make(map[int64]float64, len(weights))
	for _, w := range weights {
		byWord[w.WordID] = w.Weight
	}

	now := s.now()
	pool := make([]scoring.Candidate, 0, len(words))
	var missing []learning.WordWeight
	for _, word := range words {
		weight, ok := byWord[word.ID]
		if !ok {
			weight = s.initialWeight
			missing = append(missing, learning.WordWeight{
				LearnerID: learnerID,
				WordID:    word.ID,
				Weight:    weight,
				UpdatedAt: now,
			})
		}
		pool = append(pool, scoring.Candidate{Word: word, Weight: weight})
	}
	slices.SortFunc(pool, func(a, b scoring.Candidate) int {
		return cmp.Compare(a.Word.ID, b.Word.ID)
	})

	if len(missing) > 0 {
		if err := s.repos.Weights.InsertMissing(ctx, missing, s.initBatchSize); err != nil {
			return nil, fmt.Errorf("weights.InsertMissing(%d weights) > %w", len(missing), err)
		}
		slog.Default().Debug("initialized word weights",
			"learnerID", learnerID,
			"count", len(missing))
	}
	return pool, nil
}

// Submit grades an answer and records the attempt.
// Answers are compared after trimming, lowercasing and removing whitespace.
func (s *Service) Submit(ctx context.Context, learnerID uuid.UUID, wordID int64, answer string) (Result, error) {
	normalized := vocabulary.NormalizeName(answer)
	if normalized == "" {
		return Result{}, fmt.Errorf("%w: answer is empty", ErrInvalidAnswer)
	}
	word, err := s.findWord(ctx, learnerID, wordID)
	if err != nil {
		return Result{}, err
	}

	outcome := scoring.OutcomeFromResult(normalized == word.Name)
	result, err := s.record(ctx, learnerID, word, outcome)
	if err != nil {
		return Result{}, err
	}
	if result.Correct {
		result.Answer = word.Name
	}
	return result, nil
}

// Skip reveals the word and records the attempt as incorrect.
func (s *Service) Skip(ctx context.Context, learnerID uuid.UUID, wordID int64) (Result, error) {
	word, err := s.findWord(ctx, learnerID, wordID)
	if err != nil {
		return Result{}, err
	}
	result, err := s.record(ctx, learnerID, word, scoring.Incorrect)
	if err != nil {
		return Result{}, err
	}
	result.Skipped = true
	result.Answer = word.Name
	return result, nil
}

func (s *Service) record(ctx context.Context, learnerID uuid.UUID, word *vocabulary.Word, outcome scoring.Outcome) (Result, error) {
	current := s.initialWeight
	existing, err := s.repos.Weights.Find(ctx, learnerID, word.ID)
	if err != nil {
		return Result{}, fmt.Errorf("weights.Find(%d) > %w", word.ID, err)
	}
	if existing != nil {
		// Rows written before the floor was raised are graded from the floor.
		current = max(existing.Weight, s.policy.Floor)
	}

	next, err := s.policy.NextWeight(current, outcome)
	if err != nil {
		return Result{}, fmt.Errorf("policy.NextWeight(%v, %s) > %w", current, outcome, err)
	}

	now := s.now()
	attempt := &learning.Attempt{
		LearnerID: learnerID,
		WordID:    word.ID,
		Result:    outcome.Result(),
		CreatedAt: now,
	}
	weight := learning.WordWeight{
		LearnerID: learnerID,
		WordID:    word.ID,
		Weight:    next,
		UpdatedAt: now,
	}
	if err := s.repos.Recorder.Record(ctx, weight, attempt); err != nil {
		return Result{}, fmt.Errorf("recorder.Record(%d) > %w", word.ID, err)
	}
	slog.Default().Info("attempt recorded",
		"learnerID", learnerID,
		"wordID", word.ID,
		"outcome", outcome,
		"previousWeight", current,
		"weight", next)

	return Result{
		WordID:         word.ID,
		Outcome:        outcome,
		Correct:        outcome == scoring.Correct,
		PreviousWeight: current,
		Weight:         next,
		AttemptID:      attempt.ID,
	}, nil
}

// Hint reveals letters of the word that are not in revealed yet. Nothing is stored.
func (s *Service) Hint(ctx context.Context, learnerID uuid.UUID, wordID int64, revealed []int) (Hint, error) {
	word, err := s.findWord(ctx, learnerID, wordID)
	if err != nil {
		return Hint{}, err
	}
	hint, err := newHint(*word, revealed, s.src)
	if err != nil {
		return Hint{}, fmt.Errorf("%w: positions %v for a word of %d letters", err, revealed, len([]rune(word.Name)))
	}
	return hint, nil
}

// History returns the learner's attempts for a word, oldest first.
func (s *Service) History(ctx context.Context, learnerID uuid.UUID, wordID int64) ([]learning.Attempt, error) {
	if _, err := s.findWord(ctx, learnerID, wordID); err != nil {
		return nil, err
	}
	attempts, err := s.repos.Attempts.FindByLearnerAndWord(ctx, learnerID, wordID)
	if err != nil {
		return nil, fmt.Errorf("attempts.FindByLearnerAndWord(%d) > %w", wordID, err)
	}
	return attempts, nil
}

// Progress reports the learner's daily progress for the last days calendar days in loc, today included.
func (s *Service) Progress(ctx context.Context, learnerID uuid.UUID, days int, loc *time.Location) (statistics.ProgressResult, error) {
	if days <= 0 {
		days = DefaultProgressDays
	}
	if loc == nil {
		loc = time.UTC
	}
	to := s.now().In(loc)
	from := time.Date(to.Year(), to.Month(), to.Day()-(days-1), 0, 0, 0, 0, loc)

	attempts, err := s.repos.Attempts.FindByLearnerSince(ctx, learnerID, from)
	if err != nil {
		return statistics.ProgressResult{}, fmt.Errorf("attempts.FindByLearnerSince(%s) > %w", from.Format(time.RFC3339), err)
	}
	return statistics.CalculateDailyProgress(attempts, from, to, loc), nil
}

// HardestWords returns up to limit visible words, heaviest first.
// A non-positive limit returns all of them.
func (s *Service) HardestWords(ctx context.Context, learnerID uuid.UUID, limit int) ([]scoring.Candidate, error) {
	pool, err := s.loadPool(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(pool, func(a, b scoring.Candidate) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	if limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	return pool, nil
}

func (s *Service) findWord(ctx context.Context, learnerID uuid.UUID, wordID int64) (*vocabulary.Word, error) {
	word, err := s.repos.Words.FindByID(ctx, learnerID, wordID)
	if err != nil {
		return nil, fmt.Errorf("words.FindByID(%d) > %w", wordID, err)
	}
	if word == nil {
		return nil, fmt.Errorf("%w: %d", ErrWordNotFound, wordID)
	}
	return word, nil
}
