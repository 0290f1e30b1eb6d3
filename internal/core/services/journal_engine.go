package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
	portssvc "github.com/atlastrek/travel_ops_app/internal/core/ports/services"
)

// JournalRule is a pure transform from one event payload to a balanced
// journal entry. A rule resolves account ids via the resolver, assembles its
// lines, and constructs the entry through domain.NewJournalEntry; any
// resolver failure aborts before an entry exists, so a rule never returns a
// partially built entry.
type JournalRule interface {
	EventType() domain.BusinessEvent
	Apply(ctx context.Context, payload domain.EventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error)
}

// typedRule binds a rule body to its concrete payload type. The dynamic
// payload check lives here, once, instead of inside every rule body.
type typedRule[P domain.EventPayload] struct {
	event domain.BusinessEvent
	build func(ctx context.Context, payload P, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error)
}

// NewRule constructs a JournalRule whose body receives the concrete payload
// type P. Dispatching a payload of any other shape fails with
// apperrors.ErrPayloadMismatch.
func NewRule[P domain.EventPayload](event domain.BusinessEvent, build func(ctx context.Context, payload P, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error)) JournalRule {
	return typedRule[P]{event: event, build: build}
}

func (r typedRule[P]) EventType() domain.BusinessEvent { return r.event }

func (r typedRule[P]) Apply(ctx context.Context, payload domain.EventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	p, ok := payload.(P)
	if !ok {
		var want P
		return nil, fmt.Errorf("%w: event %s expects %T, got %T", apperrors.ErrPayloadMismatch, r.event, want, payload)
	}
	return r.build(ctx, p, resolver)
}

// JournalEngine owns the rule set and dispatches events to rules. It is
// stateless apart from the registry, which is populated at construction and
// not mutated afterwards in normal operation, so concurrent ProcessEvent
// calls need no locking.
type JournalEngine struct {
	rules map[domain.BusinessEvent]JournalRule
}

var _ portssvc.JournalEngineSvc = (*JournalEngine)(nil)

// NewJournalEngine constructs an engine with the full default rule set
// installed. PERIOD_CLOSE, YEAR_END_CLOSE and MANUAL_ADJUSTMENT carry no
// rule; ProcessEvent for those fails with RuleNotFound.
func NewJournalEngine() *JournalEngine {
	e := &JournalEngine{rules: make(map[domain.BusinessEvent]JournalRule)}
	for _, group := range [][]JournalRule{
		bookingRules(),
		paymentRules(),
		tripRules(),
		vendorRules(),
		payrollRules(),
		expenseRules(),
		gearRules(),
		channelRules(),
	} {
		for _, rule := range group {
			e.RegisterRule(rule)
		}
	}
	return e
}

// RegisterRule installs the rule for its event type. The last registration
// for an event type wins. Registration is a construction/startup concern
// and is not safe concurrently with ProcessEvent.
func (e *JournalEngine) RegisterRule(rule JournalRule) {
	e.rules[rule.EventType()] = rule
}

// Rule returns the installed rule for an event type, if any.
func (e *JournalEngine) Rule(event domain.BusinessEvent) (JournalRule, bool) {
	rule, ok := e.rules[event]
	return rule, ok
}

// ProcessEvent looks up the rule for the event and invokes it. The returned
// entry is owned by the caller; the engine keeps no reference.
func (e *JournalEngine) ProcessEvent(ctx context.Context, event domain.BusinessEvent, payload domain.EventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	rule, ok := e.rules[event]
	if !ok {
		return nil, &apperrors.RuleNotFoundError{EventType: string(event)}
	}
	entry, err := rule.Apply(ctx, payload, resolver)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RegisteredEvents returns all event types with an installed rule, sorted
// for stable introspection.
func (e *JournalEngine) RegisteredEvents() []domain.BusinessEvent {
	events := make([]domain.BusinessEvent, 0, len(e.rules))
	for event := range e.rules {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// MissingRules returns the members of the business event tag set that have
// no installed rule, in tag-set order. Deployment checks compare this
// against the known gap list.
func (e *JournalEngine) MissingRules() []domain.BusinessEvent {
	var missing []domain.BusinessEvent
	for _, event := range domain.AllBusinessEvents() {
		if _, ok := e.rules[event]; !ok {
			missing = append(missing, event)
		}
	}
	return missing
}
