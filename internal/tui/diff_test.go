package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func openedDiff(t *testing.T) (*DiffModel, *mock.MockClientVaultService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	ctx := context.Background()

	sel := sampleSelection()
	vault.EXPECT().Compare(ctx, sel.Left.ID, sel.Right.ID).Return(sampleDiff(), nil)

	m := NewDiffModel(ctx, vault)
	_, cmd := m.Update(openDiffMsg{selection: sel})
	m.Update(exec(t, cmd))
	require.True(t, m.loaded)
	return m, vault
}

func visibleKeys(m *DiffModel) []string {
	var out []string
	for _, e := range m.visible() {
		out = append(out, e.Key)
	}
	return out
}

func TestDiffModel_OpenLoadsComparison(t *testing.T) {
	m, _ := openedDiff(t)

	assert.False(t, m.loading)
	assert.Equal(t, []string{"NEW_FLAG", "OLD_TOKEN", "DB_URL", "LOG_LEVEL"}, visibleKeys(m))

	view := m.View()
	assert.Contains(t, view, "billing")
	assert.Contains(t, view, "DB_URL")
	assert.Contains(t, view, "все 4")
}

func TestDiffModel_CompareError(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	vault.EXPECT().Compare(gomock.Any(), "dev", "prod").Return(models.DiffResult{}, service.ErrVaultLocked)

	m := NewDiffModel(context.Background(), vault)
	_, cmd := m.Update(openDiffMsg{selection: sampleSelection()})
	m.Update(exec(t, cmd))

	assert.False(t, m.loaded)
	assert.Equal(t, "Хранилище заблокировано", m.errMsg)
}

func TestDiffModel_TabsFilterByKind(t *testing.T) {
	m, _ := openedDiff(t)

	m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, []string{"NEW_FLAG"}, visibleKeys(m))

	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, []string{"DB_URL"}, visibleKeys(m))

	m.Update(keyOf(tea.KeyShiftTab))
	m.Update(keyOf(tea.KeyShiftTab))
	m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, models.DiffFilterAll, diffTabs[m.tab])

	m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, []string{"LOG_LEVEL"}, visibleKeys(m))
}

func TestDiffModel_SearchFiltersLive(t *testing.T) {
	m, _ := openedDiff(t)

	m.Update(runes("/"))
	require.True(t, m.capturesInput())

	for _, r := range "postgres" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, []string{"DB_URL"}, visibleKeys(m))

	// letters typed while searching are not hotkeys
	m.Update(runes("c"))
	assert.Equal(t, "postgresc", m.search.Value())

	m.Update(keyOf(tea.KeyBackspace))
	m.Update(keyOf(tea.KeyEnter))
	assert.False(t, m.capturesInput())
	assert.Equal(t, []string{"DB_URL"}, visibleKeys(m))

	// esc clears the query before leaving the page
	_, cmd := m.Update(keyOf(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Len(t, m.visible(), 4)
}

func TestDiffModel_EscNavigatesBack(t *testing.T) {
	m, _ := openedDiff(t)

	_, cmd := m.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, NavigateTo{Page: pagePicker}, exec(t, cmd))
}

func TestDiffModel_PromoteLeftToRight(t *testing.T) {
	m, vault := openedDiff(t)

	// Modified tab, DB_URL selected
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	entry := sampleDiff().Modified[0]

	updated := sampleDiff()
	updated.Unchanged = append(updated.Unchanged, entry)
	updated.Modified = nil
	vault.EXPECT().
		PromoteEntry(gomock.Any(), entry, models.LeftToRight, "dev", "prod").
		Return(updated, nil)

	_, cmd := m.Update(runes(">"))
	require.True(t, m.loading)
	m.Update(exec(t, cmd))

	assert.False(t, m.loading)
	assert.Empty(t, m.visible())
	assert.Equal(t, "DB_URL обновлён в prod", m.status)
}

func TestDiffModel_PromoteRightToLeft(t *testing.T) {
	m, vault := openedDiff(t)

	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	entry := sampleDiff().Removed[0]

	vault.EXPECT().
		PromoteEntry(gomock.Any(), entry, models.RightToLeft, "dev", "prod").
		Return(sampleDiff(), nil)

	_, cmd := m.Update(runes("<"))
	m.Update(exec(t, cmd))
	assert.Equal(t, "OLD_TOKEN добавлен в prod", m.status)
}

func TestDiffModel_PromoteUnchangedShowsError(t *testing.T) {
	m, vault := openedDiff(t)

	m.Update(keyOf(tea.KeyShiftTab))
	vault.EXPECT().
		PromoteEntry(gomock.Any(), gomock.Any(), models.LeftToRight, "dev", "prod").
		Return(models.DiffResult{}, service.ErrPromotionNotAllowed)

	_, cmd := m.Update(runes(">"))
	m.Update(exec(t, cmd))

	assert.Equal(t, "Значения совпадают, переносить нечего", m.errMsg)
	assert.True(t, m.loaded)
	assert.Len(t, m.result.All(), 4, "previous result is kept")
}

func TestDiffModel_PromoteWriteFailure(t *testing.T) {
	m, vault := openedDiff(t)

	vault.EXPECT().
		PromoteEntry(gomock.Any(), gomock.Any(), models.LeftToRight, "dev", "prod").
		Return(models.DiffResult{}, &service.PromotionError{Key: "NEW_FLAG", Err: errors.New("disk full")})

	_, cmd := m.Update(runes(">"))
	m.Update(exec(t, cmd))

	assert.Contains(t, m.errMsg, "NEW_FLAG")
	assert.Contains(t, m.errMsg, "disk full")
}

func TestDiffModel_SecretsMaskedUntilRevealed(t *testing.T) {
	m, _ := openedDiff(t)

	assert.NotContains(t, m.View(), "abc")
	assert.Contains(t, m.View(), maskedValue)

	m.Update(runes("r"))
	assert.Contains(t, m.View(), "abc")
}

func TestDiffModel_CursorStaysInRange(t *testing.T) {
	m, _ := openedDiff(t)

	for range 10 {
		m.Update(runes("j"))
	}
	assert.Equal(t, 3, m.idx)

	for range 10 {
		m.Update(runes("k"))
	}
	assert.Equal(t, 0, m.idx)
}

func TestDiffModel_CopiedStatus(t *testing.T) {
	m, _ := openedDiff(t)

	_, cmd := m.Update(copiedMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Сводка скопирована в буфер обмена", m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)

	m.Update(copiedMsg{err: errors.New("no clipboard")})
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestDiffModel_SyncPanelKey(t *testing.T) {
	m, _ := openedDiff(t)

	_, cmd := m.Update(runes("p"))
	assert.Equal(t, NavigateTo{Page: pageSync, Payload: openSyncPanelMsg{back: pageDiff}}, exec(t, cmd))
}

func TestPromotedMessage(t *testing.T) {
	sel := sampleSelection()
	d := sampleDiff()

	assert.Equal(t, "NEW_FLAG добавлен в dev", promotedMessage(d.Added[0], models.LeftToRight, sel))
	assert.Equal(t, "NEW_FLAG: переносить нечего", promotedMessage(d.Added[0], models.RightToLeft, sel))
	assert.Equal(t, "DB_URL обновлён в dev", promotedMessage(d.Modified[0], models.RightToLeft, sel))
}
