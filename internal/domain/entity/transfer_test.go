package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
)

func TestParseTransferStatus_ConjuntoCerrado(t *testing.T) {
	valid := []string{"pending", "in_progress", "completed", "cancelled"}
	for _, s := range valid {
		parsed, ok := entity.ParseTransferStatus(s)
		assert.True(t, ok, "%q es un estado válido", s)
		assert.Equal(t, entity.TransferStatus(s), parsed)
	}

	invalid := []string{"", "shipped", "PENDING", "Completed", "done", " pending"}
	for _, s := range invalid {
		_, ok := entity.ParseTransferStatus(s)
		assert.False(t, ok, "%q debe rechazarse", s)
	}
}

// La clasificación depende solo de si la transición cruza la frontera de
// completed, no del par concreto de estados.
func TestClassifyTransition(t *testing.T) {
	const (
		pending    = entity.TransferStatusPending
		inProgress = entity.TransferStatusInProgress
		completed  = entity.TransferStatusCompleted
		cancelled  = entity.TransferStatusCancelled
	)

	cases := []struct {
		name     string
		previous entity.TransferStatus
		next     entity.TransferStatus
		want     entity.TransitionKind
	}{
		{"mismo estado pending", pending, pending, entity.TransitionNoChange},
		{"mismo estado completed", completed, completed, entity.TransitionNoChange},
		{"pending a completed activa", pending, completed, entity.TransitionActivation},
		{"in_progress a completed activa", inProgress, completed, entity.TransitionActivation},
		{"cancelled a completed activa", cancelled, completed, entity.TransitionActivation},
		{"completed a pending revierte", completed, pending, entity.TransitionReversal},
		{"completed a cancelled revierte", completed, cancelled, entity.TransitionReversal},
		{"completed a in_progress revierte", completed, inProgress, entity.TransitionReversal},
		{"pending a in_progress solo estado", pending, inProgress, entity.TransitionStatusOnly},
		{"in_progress a cancelled solo estado", inProgress, cancelled, entity.TransitionStatusOnly},
		{"cancelled a pending solo estado", cancelled, pending, entity.TransitionStatusOnly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ClassifyTransition(tc.previous, tc.next))
		})
	}
}
