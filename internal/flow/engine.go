package flow

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/catalog"
	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/moderation"
)

// Command is one of the bot's slash commands.
type Command string

const (
	CommandStart  Command = "start"
	CommandNew    Command = "new"
	CommandCancel Command = "cancel"
	CommandRules  Command = "rules"
	CommandSafety Command = "safety"
)

// Event is one inbound chat event: exactly one of Command, Choice (raw
// callback data) or Text is set.
type Event struct {
	Command Command
	Choice  string
	Text    string
}

// ModeratorNotifier forwards an accepted draft to the moderation recipient.
// Delivery is best-effort: the engine logs a failure and still reports
// success to the user.
type ModeratorNotifier interface {
	Notify(ctx context.Context, text string) error
}

// Engine is the conversation state machine. It is the sole mutator of the
// session store and the dedup guard.
type Engine struct {
	store    *SessionStore
	guard    DedupGuard
	notifier ModeratorNotifier
	catalog  *catalog.Catalog

	// Webhook deliveries for the same user can race; transitions assume
	// run-to-completion, so events are serialized per user id.
	lockMu    sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewEngine wires the state machine to its collaborators.
func NewEngine(store *SessionStore, guard DedupGuard, notifier ModeratorNotifier, cat *catalog.Catalog) *Engine {
	return &Engine{
		store:     store,
		guard:     guard,
		notifier:  notifier,
		catalog:   cat,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// userLock returns the per-user mutex, creating it on first use.
func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.lockMu.Lock()
	defer e.lockMu.Unlock()
	mu, ok := e.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		e.userLocks[userID] = mu
	}
	return mu
}

// HandleEvent runs one inbound event through the state machine and returns
// the rendering instruction for the transport to deliver. Events for the
// same user are handled strictly one at a time.
func (e *Engine) HandleEvent(ctx context.Context, userID int64, ev Event) (Reply, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	switch {
	case ev.Command != "":
		return e.handleCommand(userID, ev.Command), nil
	case ev.Choice != "":
		return e.handleChoice(ctx, userID, ev.Choice), nil
	default:
		return e.handleText(userID, ev.Text), nil
	}
}

// session returns the user's session, materializing a fresh idle one when
// none exists. A missing session is never an error.
func (e *Engine) session(userID int64) *Session {
	s, ok := e.store.Get(userID)
	if !ok {
		s = NewSession()
		e.store.Put(userID, s)
	}
	return s
}

// ─── Commands ────────────────────────────────────────────────────────────────

func (e *Engine) handleCommand(userID int64, cmd Command) Reply {
	switch cmd {
	case CommandStart:
		if s, ok := e.store.Get(userID); ok && s.InProgress() {
			return e.resumeMenu()
		}
		e.store.Put(userID, NewSession())
		return e.welcomeMenu()

	case CommandNew:
		e.store.Delete(userID)
		s := NewSession()
		s.Step = StepIndustry
		e.store.Put(userID, s)
		r := e.industryMenu()
		r.Messages[0].Text = textNewVacancy + "\n\n" + r.Messages[0].Text
		return r

	case CommandCancel:
		e.store.Delete(userID)
		return textReply(textCancelled)

	case CommandRules:
		return e.rulesMenu()

	case CommandSafety:
		return e.safetyMenu()
	}
	return textReply(textBackToStart)
}

// ─── Selections ──────────────────────────────────────────────────────────────

func (e *Engine) handleChoice(ctx context.Context, userID int64, data string) Reply {
	choice, err := ParseChoice(data)
	if err != nil {
		log.Printf("[flow] user %d: %v", userID, err)
		return Reply{}
	}

	s := e.session(userID)

	switch choice.Kind {
	case ChoiceBegin:
		s.Step = StepIndustry
		return e.industryMenu()

	case ChoiceResume:
		// No state change: re-render whatever the current step asks for.
		return e.menuFor(s)

	case ChoiceRestart:
		e.store.Delete(userID)
		s = NewSession()
		s.Step = StepIndustry
		e.store.Put(userID, s)
		return e.industryMenu()

	case ChoiceShowRules:
		return e.rulesMenu()

	case ChoiceShowSafety:
		return e.safetyMenu()

	case ChoiceBackToStart:
		return textReply(textBackToStart)

	case ChoiceIndustry:
		ind := e.catalog.IndustryByKey(choice.Payload)
		if ind == nil {
			log.Printf("[flow] user %d: unknown industry key %q", userID, choice.Payload)
			return Reply{}
		}
		s.Draft.Industry = ind.Label
		s.SelectedTags = nil
		s.Step = StepHashtags
		return e.hashtagMenu(s)

	case ChoiceTagToggle:
		s.ToggleTag(choice.Payload)
		return e.hashtagMenu(s)

	case ChoiceTagsDone:
		if len(s.SelectedTags) == 0 {
			return Reply{Alert: textEmptyTags}
		}
		s.Draft.Tags = append([]string(nil), s.SelectedTags...)
		s.Step = StepPosition
		return e.positionMenu()

	case ChoicePosition:
		p := e.catalog.PositionByKey(choice.Payload)
		if p == nil {
			log.Printf("[flow] user %d: unknown position key %q", userID, choice.Payload)
			return Reply{}
		}
		s.Draft.Position = p.Label
		s.Step = StepSalary
		return e.salaryMenu()

	case ChoiceSalary:
		b := e.catalog.SalaryBracketByKey(choice.Payload)
		if b == nil {
			log.Printf("[flow] user %d: unknown salary key %q", userID, choice.Payload)
			return Reply{}
		}
		s.Draft.Salary = b.Label
		s.Step = StepDescription
		s.Awaiting = FieldDescription
		return textReply(stepHeader(StepDescription) + "\n" + promptDescription)

	case ChoiceSalaryOther:
		s.Awaiting = FieldSalary
		return textReply(promptSalaryText)

	case ChoiceContactMode:
		prompt, ok := contactPrompts[choice.Payload]
		if !ok {
			log.Printf("[flow] user %d: unknown contact mode %q", userID, choice.Payload)
			return Reply{}
		}
		s.Awaiting = FieldContact
		return textReply(prompt)

	case ChoiceLocation:
		l := e.catalog.LocationByKey(choice.Payload)
		if l == nil {
			log.Printf("[flow] user %d: unknown location key %q", userID, choice.Payload)
			return Reply{}
		}
		s.Draft.Location = l.Label
		s.Step = StepConfirm
		return e.confirmScreen(s)

	case ChoiceLocationOther:
		s.Awaiting = FieldLocation
		return textReply(promptLocationText)

	case ChoiceConfirmYes:
		return e.submit(ctx, userID, s)

	case ChoiceConfirmCancel:
		e.store.Delete(userID)
		return textReply(textCancelled)
	}
	return Reply{}
}

// ─── Free text ───────────────────────────────────────────────────────────────

func (e *Engine) handleText(userID int64, text string) Reply {
	s, ok := e.store.Get(userID)
	if !ok || s.Awaiting == FieldNone {
		// Nothing to fill — ignore silently.
		return Reply{}
	}

	field := s.Awaiting
	label := fieldLabels[field]

	if field == FieldContact {
		if err := moderation.CheckContact(text, label); err != nil {
			return textReply(err.Error())
		}
	} else if err := moderation.Check(text, label); err != nil {
		// Input discarded, step and marker unchanged.
		return textReply(err.Error() + textTryAgain)
	}

	switch field {
	case FieldSalary:
		s.Draft.Salary = text
		s.Step = StepDescription
		s.Awaiting = FieldDescription
		return textReply(stepHeader(StepDescription) + "\n" + promptDescription)

	case FieldDescription:
		s.Draft.Description = text
		s.Step = StepContact
		s.Awaiting = FieldNone
		return e.contactMenu()

	case FieldContact:
		s.Draft.Contact = text
		s.Step = StepLocation
		s.Awaiting = FieldNone
		return e.locationMenu()

	case FieldLocation:
		s.Draft.Location = text
		s.Step = StepConfirm
		s.Awaiting = FieldNone
		return e.confirmScreen(s)
	}
	return Reply{}
}

// ─── Submission ──────────────────────────────────────────────────────────────

// submit runs the submission protocol: fingerprint → dedup check → record →
// notify moderator → destroy session.
func (e *Engine) submit(ctx context.Context, userID int64, s *Session) Reply {
	if err := s.Draft.Complete(); err != nil {
		// Confirm is unreachable with an incomplete draft; a hole here means
		// a transition bug, so re-render the current step instead of sending.
		log.Printf("[flow] user %d: incomplete draft at confirm: %v", userID, err)
		return e.menuFor(s)
	}

	fp := Fingerprint(s.Draft)

	dup, err := e.guard.IsDuplicate(ctx, userID, fp)
	if err != nil {
		// Guard unavailable — do not block the user over a dedup lookup.
		log.Printf("[flow] user %d: dedup check failed: %v", userID, err)
	}
	if dup {
		// No state change: the user stays at confirm and may retry later.
		return textReply(textDuplicate)
	}

	if err := e.guard.Record(ctx, userID, fp); err != nil {
		log.Printf("[flow] user %d: dedup record failed: %v", userID, err)
	}

	submissionID := uuid.NewString()
	if err := e.notifier.Notify(ctx, moderatorMessage(s.Draft, submissionID)); err != nil {
		// Best-effort forward: the user still sees success.
		log.Printf("[flow] user %d: moderator notify failed (submission %s): %v", userID, submissionID, err)
	}

	e.store.Delete(userID)
	log.Printf("[flow] user %d: vacancy submitted (submission %s)", userID, submissionID)
	return textReply(textSubmitted)
}
