package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetOrdersEagerQuery_Valid(t *testing.T) {
	query := queries.NewGetOrdersEagerQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrdersEagerQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersEagerQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersEagerQueryIsNotConstructed)
}

func TestNewGetOrdersWithLinesQuery_Valid(t *testing.T) {
	query := queries.NewGetOrdersWithLinesQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetOrderSummariesQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderSummariesQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetOrderSummariesBatchedQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderSummariesBatchedQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrderSummariesBatchedQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderSummariesBatchedQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderSummariesBatchedQueryIsNotConstructed)
}

func TestNewGetOrdersFlatQuery_Valid(t *testing.T) {
	query := queries.NewGetOrdersFlatQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersPagedQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersPagedQuery(0, 100)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 0, query.Offset())
	assert.Equal(t, 100, query.Limit())
}

func TestNewGetOrdersPagedQuery_InvalidOffset(t *testing.T) {
	_, err := queries.NewGetOrdersPagedQuery(-1, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOffsetIsInvalid)
}

func TestNewGetOrdersPagedQuery_InvalidLimit(t *testing.T) {
	_, err := queries.NewGetOrdersPagedQuery(0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLimitIsInvalid)
}

func TestGetOrdersPagedQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersPagedQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersPagedQueryIsNotConstructed)
}

func TestNewFindOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewFindOrdersQuery("", "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.MemberName())
	assert.False(t, query.HasStatus())
}

func TestNewFindOrdersQuery_WithFilters(t *testing.T) {
	query, err := queries.NewFindOrdersQuery("member1", "Placed")
	require.NoError(t, err)
	assert.Equal(t, "member1", query.MemberName())
	assert.True(t, query.HasStatus())
	assert.Equal(t, order.Placed, query.Status())
}

func TestNewFindOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewFindOrdersQuery("", "Shipped")
	require.Error(t, err)
}

func TestFindOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.FindOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrFindOrdersQueryIsNotConstructed)
}
