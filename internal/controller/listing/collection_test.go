package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsdesk/internal/domain/entity"
)

func TestCollection_Refresh(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	fetch := func(context.Context) ([]entity.Category, error) {
		calls++
		switch calls {
		case 1:
			return []entity.Category{{DocumentID: "c1", Name: "Travel"}, {DocumentID: "c2", Name: "Food"}}, nil
		case 2:
			return nil, boom
		default:
			return []entity.Category{{DocumentID: "c3", Name: "Tech"}}, nil
		}
	}
	c := NewCollection("categories", fetch, nil)
	assert.False(t, c.Loaded())

	require.NoError(t, c.Refresh(context.Background()))
	assert.True(t, c.Loaded())
	assert.Len(t, c.Items(), 2)

	require.ErrorIs(t, c.Refresh(context.Background()), boom)
	assert.Len(t, c.Items(), 2, "failed refresh keeps previous items")
	assert.ErrorIs(t, c.LastError(), boom)

	require.NoError(t, c.Refresh(context.Background()))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Tech", items[0].Name)
	assert.NoError(t, c.LastError())
}

func TestRefresherFunc(t *testing.T) {
	called := false
	var r Refresher = RefresherFunc(func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, r.Refresh(context.Background()))
	assert.True(t, called)
}
