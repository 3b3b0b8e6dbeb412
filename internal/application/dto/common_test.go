package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/TallerStock-api/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"sin valores aplica defaults", dto.PageRequest{}, dto.DefaultPageLimit, 0},
		{"limit negativo aplica default", dto.PageRequest{Limit: -5, Offset: 40}, dto.DefaultPageLimit, 40},
		{"limit dentro del rango se respeta", dto.PageRequest{Limit: 50, Offset: 10}, 50, 10},
		{"limit excesivo se recorta al máximo", dto.PageRequest{Limit: 5000}, dto.MaxPageLimit, 0},
		{"offset negativo se corrige a cero", dto.PageRequest{Limit: 20, Offset: -1}, 20, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.DefaultPage()
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset)
		})
	}
}
