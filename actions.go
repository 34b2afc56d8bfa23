package showroom

// Trigger represents the kind of occurrence an action reacts to.
type Trigger int

const (
	TriggerPick  Trigger = iota // TriggerPick fires when a Model is clicked on.
	TriggerKeyUp                // TriggerKeyUp fires when a key is released; the action's parameter names the key.
)

func (trigger Trigger) String() string {
	switch trigger {
	case TriggerPick:
		return "pick"
	case TriggerKeyUp:
		return "keyup"
	}
	return "unknown"
}

// ActionEvent is passed to an action's callback when it runs.
type ActionEvent struct {
	Trigger Trigger
	Source  INode  // The Node that was picked, if any.
	Key     string // The released key for TriggerKeyUp (" " for the space bar, lower-case letters otherwise).
}

// Action is a callback registered to run when its trigger occurs.
type Action struct {
	Trigger   Trigger
	Parameter string // Optional filter; for TriggerKeyUp, the key the action listens for. Empty matches any key.
	Execute   func(event ActionEvent)
}

// ActionManager holds the actions registered on a Model or a Scene.
type ActionManager struct {
	actions []*Action
}

// NewActionManager returns a new, empty ActionManager.
func NewActionManager() *ActionManager {
	return &ActionManager{}
}

// RegisterAction registers a callback to run when the given trigger occurs, returning the created Action.
func (am *ActionManager) RegisterAction(trigger Trigger, parameter string, execute func(event ActionEvent)) *Action {
	action := &Action{
		Trigger:   trigger,
		Parameter: parameter,
		Execute:   execute,
	}
	am.actions = append(am.actions, action)
	return action
}

// UnregisterAction removes the given Action from the ActionManager.
func (am *ActionManager) UnregisterAction(action *Action) {
	for i, a := range am.actions {
		if a == action {
			am.actions = append(am.actions[:i], am.actions[i+1:]...)
			return
		}
	}
}

// HasActions returns if any action is registered for the given trigger.
func (am *ActionManager) HasActions(trigger Trigger) bool {
	for _, a := range am.actions {
		if a.Trigger == trigger {
			return true
		}
	}
	return false
}

// Process runs every action matching the event's trigger (and, for key triggers, its key), returning how many ran.
func (am *ActionManager) Process(event ActionEvent) int {

	ran := 0

	// Actions may register further actions while running; only the ones present now are considered.
	actions := append([]*Action(nil), am.actions...)

	for _, a := range actions {

		if a.Trigger != event.Trigger {
			continue
		}

		if event.Trigger == TriggerKeyUp && a.Parameter != "" && a.Parameter != event.Key {
			continue
		}

		if a.Execute != nil {
			a.Execute(event)
		}

		ran++

	}

	return ran

}
