// Package client implements the client core: a typed state store
// driven by a closed action set, durable session persistence, and an
// HTTP client for the API surface.
package client

import (
	"github.com/applytrack/applytrack/internal/model"
)

// EditItem is the edit view's slot. It distinguishes three states:
// not yet loaded (zero value), loaded (Job != nil), and looked up but
// missing (Loaded true, Job nil).
type EditItem struct {
	Loaded bool
	Job    *model.Job
}

// State is the full client-side application state. It is mutated only
// by Reduce.
type State struct {
	// User is the logged-in display name; empty when logged out.
	User           string
	IsLoading      bool
	Jobs           []*model.Job
	ShowAlert      bool
	EditItem       EditItem
	SingleJobError bool
	EditComplete   bool
}

// Action is the closed set of state transitions. Only types in this
// package satisfy it, so Reduce can match exhaustively.
type Action interface {
	isAction()
}

// SetLoading marks the start of a network call.
type SetLoading struct{}

// RegisterSuccess carries the display name after register or login.
type RegisterSuccess struct{ Name string }

// RegisterError marks a failed register or login.
type RegisterError struct{}

// SetUser restores identity from the persisted session at startup.
type SetUser struct{ Name string }

// LogoutUser clears identity and all job state.
type LogoutUser struct{}

// FetchJobsSuccess carries the full job list.
type FetchJobsSuccess struct{ Jobs []*model.Job }

// FetchJobsError marks a failed list fetch.
type FetchJobsError struct{}

// CreateJobSuccess carries the newly created job.
type CreateJobSuccess struct{ Job *model.Job }

// CreateJobError marks a failed create.
type CreateJobError struct{}

// DeleteJobError marks a failed delete.
type DeleteJobError struct{}

// FetchSingleJobSuccess carries the job loaded for editing.
type FetchSingleJobSuccess struct{ Job *model.Job }

// FetchSingleJobError marks a single-job lookup that found nothing.
type FetchSingleJobError struct{}

// EditJobSuccess carries the post-update job.
type EditJobSuccess struct{ Job *model.Job }

// EditJobError marks a failed edit.
type EditJobError struct{}

func (SetLoading) isAction()            {}
func (RegisterSuccess) isAction()       {}
func (RegisterError) isAction()         {}
func (SetUser) isAction()               {}
func (LogoutUser) isAction()            {}
func (FetchJobsSuccess) isAction()      {}
func (FetchJobsError) isAction()        {}
func (CreateJobSuccess) isAction()      {}
func (CreateJobError) isAction()        {}
func (DeleteJobError) isAction()        {}
func (FetchSingleJobSuccess) isAction() {}
func (FetchSingleJobError) isAction()   {}
func (EditJobSuccess) isAction()        {}
func (EditJobError) isAction()          {}

// Reduce is the pure transition function: it returns the next state
// for the given action and never mutates its input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetLoading:
		state.IsLoading = true
		state.ShowAlert = false
		state.EditComplete = false
		return state

	case RegisterSuccess:
		state.IsLoading = false
		state.User = a.Name
		return state

	case RegisterError:
		state.IsLoading = false
		state.User = ""
		state.ShowAlert = true
		return state

	case SetUser:
		state.User = a.Name
		return state

	case LogoutUser:
		state.User = ""
		state.ShowAlert = false
		state.Jobs = nil
		state.EditItem = EditItem{}
		return state

	case FetchJobsSuccess:
		state.IsLoading = false
		state.EditItem = EditItem{}
		state.SingleJobError = false
		state.EditComplete = false
		state.Jobs = a.Jobs
		return state

	case FetchJobsError:
		state.IsLoading = false
		return state

	case CreateJobSuccess:
		state.IsLoading = false
		state.Jobs = append(state.Jobs[:len(state.Jobs):len(state.Jobs)], a.Job)
		return state

	case CreateJobError:
		state.IsLoading = false
		state.ShowAlert = true
		return state

	case DeleteJobError:
		state.IsLoading = false
		state.ShowAlert = true
		return state

	case FetchSingleJobSuccess:
		state.IsLoading = false
		state.EditItem = EditItem{Loaded: true, Job: a.Job}
		return state

	case FetchSingleJobError:
		state.IsLoading = false
		state.EditItem = EditItem{Loaded: true}
		state.SingleJobError = true
		return state

	case EditJobSuccess:
		state.IsLoading = false
		state.EditComplete = true
		state.EditItem = EditItem{Loaded: true, Job: a.Job}
		return state

	case EditJobError:
		state.IsLoading = false
		state.EditComplete = true
		state.ShowAlert = true
		return state
	}

	// Unreachable: the action set is closed to this package.
	return state
}
