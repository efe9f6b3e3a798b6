package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"grimoire/browser/internal/client/clienttest"
	"grimoire/browser/internal/domain"

	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func intPtr(n int) *int {
	return &n
}

func TestLeafFactionName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Xenos - Necrons", "Necrons"},
		{"Imperium - Adeptus Astartes - Deathwatch", "Deathwatch"},
		{"Chaos - Thousand Sons", "Thousand Sons"},
		{"Drukhari", "Drukhari"},
		{"Genestealer Cults", "Genestealer Cults"},
		{"Xenos-Orks", "Xenos-Orks"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LeafFactionName(tt.in))
		})
	}
}

func TestGroupByLeaf_IsPartition(t *testing.T) {
	inputs := [][]string{
		{},
		{"Xenos - Necrons"},
		{"Xenos - Necrons", "Xenos - Orks", "Drukhari"},
		{"Imperium - Adeptus Astartes - Space Wolves", "Imperium - Space Wolves", "Imperium - Adeptus Astartes", "Adeptus Astartes"},
		{"Chaos - Chaos Space Marines", "Chaos - Chaos Space Marines", "Chaos - Death Guard"},
	}

	for _, catalogues := range inputs {
		entries := GroupByLeaf(catalogues)

		var union []string
		for _, entry := range entries {
			require.NotEmpty(t, entry.Catalogues)
			for _, name := range entry.Catalogues {
				assert.Equal(t, entry.Name, LeafFactionName(name))
			}
			union = append(union, entry.Catalogues...)
		}

		want := append([]string(nil), catalogues...)
		sort.Strings(want)
		sort.Strings(union)
		if diff := cmp.Diff(want, union, cmpEmptyAsNil()); diff != "" {
			t.Errorf("groups are not a partition of %v (-want +got):\n%s", catalogues, diff)
		}
	}
}

func cmpEmptyAsNil() cmp.Option {
	return cmp.Transformer("emptyAsNil", func(s []string) []string {
		if len(s) == 0 {
			return nil
		}
		return s
	})
}

func TestGroupByLeaf_SortedForEveryOrdering(t *testing.T) {
	base := []string{"Xenos - Orks", "aeldari", "Xenos - Necrons", "Drukhari"}
	want := []string{"aeldari", "Drukhari", "Necrons", "Orks"}

	permute(base, func(order []string) {
		entries := GroupByLeaf(order)
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name)
		}
		assert.Equal(t, want, names, "input order %v", order)
	})
}

func permute(items []string, visit func([]string)) {
	var rec func(int)
	rec = func(k int) {
		if k == len(items) {
			visit(append([]string(nil), items...))
			return
		}
		for i := k; i < len(items); i++ {
			items[k], items[i] = items[i], items[k]
			rec(k + 1)
			items[k], items[i] = items[i], items[k]
		}
	}
	rec(0)
}

func TestGroupByLeaf_CaseExact(t *testing.T) {
	entries := GroupByLeaf([]string{"Xenos - Orks", "Xenos - orks"})
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"Xenos - orks"}, entries[0].Catalogues)
	assert.Equal(t, []string{"Xenos - Orks"}, entries[1].Catalogues)
}

func TestCategoryFactions_Xenos(t *testing.T) {
	mockClient := new(clienttest.MockClient)
	mockClient.On("ListFactions", mock.Anything).Return([]domain.Faction{
		{Name: "Imperium", Catalogues: []string{"Imperium - Adeptus Custodes"}},
		{Name: "Xenos", Catalogues: []string{"Xenos - Necrons", "Xenos - Orks", "Drukhari"}},
	}, nil)
	mockClient.On("GetFactionUnits", mock.Anything, "Drukhari").Return(clienttest.Units(3), nil)
	mockClient.On("GetFactionUnits", mock.Anything, "Necrons").Return(clienttest.Units(5), nil)
	mockClient.On("GetFactionUnits", mock.Anything, "Orks").Return(clienttest.Units(7), nil)

	svc := NewService(mockClient, 100)
	entries, err := svc.CategoryFactions(context.Background(), "xenos")
	require.NoError(t, err)

	want := []domain.FactionEntry{
		{Name: "Drukhari", Catalogues: []string{"Drukhari"}, UnitCount: intPtr(3)},
		{Name: "Necrons", Catalogues: []string{"Xenos - Necrons"}, UnitCount: intPtr(5)},
		{Name: "Orks", Catalogues: []string{"Xenos - Orks"}, UnitCount: intPtr(7)},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("CategoryFactions mismatch (-want +got):\n%s", diff)
	}

	mockClient.AssertExpectations(t)
}

func TestCategoryFactions_UpperCaseTokenMatchesNoFaction(t *testing.T) {
	mockClient := new(clienttest.MockClient)
	mockClient.On("ListFactions", mock.Anything).Return([]domain.Faction{
		{Name: "Xenos", Catalogues: []string{"Xenos - Necrons"}},
	}, nil)

	entries, err := NewService(mockClient, 100).CategoryFactions(context.Background(), "XENOS")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFactionNotFound))
	assert.Equal(t, "no faction found for category: XENOS", err.Error())
	assert.Empty(t, entries)
	mockClient.AssertNotCalled(t, "GetFactionUnits", mock.Anything, mock.Anything)
}

func TestCategoryFactions_CapitalizesFirstLetterOnly(t *testing.T) {
	mockClient := new(clienttest.MockClient)
	mockClient.On("ListFactions", mock.Anything).Return([]domain.Faction{
		{Name: "ImPERIUM", Catalogues: []string{"Imperium - Adeptus Custodes"}},
	}, nil)
	mockClient.On("GetFactionUnits", mock.Anything, "Adeptus Custodes").Return(clienttest.Units(2), nil)

	entries, err := NewService(mockClient, 100).CategoryFactions(context.Background(), "imPERIUM")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Count())
}

func TestCategoryFactions_InvalidToken(t *testing.T) {
	for _, token := range []string{"Orks", "orks", "", "xeno"} {
		t.Run(token, func(t *testing.T) {
			mockClient := new(clienttest.MockClient)

			entries, err := NewService(mockClient, 100).CategoryFactions(context.Background(), token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCategory))
			assert.Nil(t, entries)
			assert.Contains(t, err.Error(), "invalid category: "+token+".")
			assert.Contains(t, err.Error(), "xenos, imperium, chaos")

			mockClient.AssertNotCalled(t, "ListFactions", mock.Anything)
		})
	}
}

func TestCategoryFactions_TopLevelMissing(t *testing.T) {
	mockClient := new(clienttest.MockClient)
	mockClient.On("ListFactions", mock.Anything).Return([]domain.Faction{
		{Name: "Xenos", Catalogues: []string{"Xenos - Necrons"}},
	}, nil)

	entries, err := NewService(mockClient, 100).CategoryFactions(context.Background(), "chaos")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFactionNotFound))
	assert.Equal(t, "no faction found for category: Chaos", err.Error())
	assert.Empty(t, entries)
}

func TestCategoryFactions_ListFailure(t *testing.T) {
	mockClient := new(clienttest.MockClient)
	mockClient.On("ListFactions", mock.Anything).Return(nil, errors.New("connection refused"))

	entries, err := NewService(mockClient, 100).CategoryFactions(context.Background(), "xenos")
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.Nil(t, entries)
}

func TestCategoryFactions_OneCountFails(t *testing.T) {
	mockClient := new(clienttest.MockClient)
	mockClient.On("ListFactions", mock.Anything).Return([]domain.Faction{
		{Name: "Chaos", Catalogues: []string{
			"Chaos - Death Guard",
			"Chaos - Thousand Sons",
			"Chaos - World Eaters",
		}},
	}, nil)
	mockClient.On("GetFactionUnits", mock.Anything, "Death Guard").Return(clienttest.Units(4), nil)
	mockClient.On("GetFactionUnits", mock.Anything, "Thousand Sons").Return(nil, errors.New("timeout"))
	mockClient.On("GetFactionUnits", mock.Anything, "World Eaters").Return(clienttest.Units(6), nil)

	hook := logtest.NewGlobal()
	defer hook.Reset()

	entries, err := NewService(mockClient, 100).CategoryFactions(context.Background(), "chaos")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	counts := map[string]int{}
	for _, entry := range entries {
		require.NotNil(t, entry.UnitCount, entry.Name)
		counts[entry.Name] = *entry.UnitCount
	}
	assert.Equal(t, map[string]int{"Death Guard": 4, "Thousand Sons": 0, "World Eaters": 6}, counts)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "⚠️ Failed to count units for Thousand Sons, showing 0: timeout", hook.LastEntry().Message)
}
