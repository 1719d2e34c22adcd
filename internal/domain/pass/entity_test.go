//go:build unit

package pass_test

import (
	"testing"
	"time"

	"salon-reserve/internal/domain/pass"
	"salon-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivePass(t *testing.T) {
	b := builder.NewPassBuilder()
	items := []pass.ContentItem{b.BuildContentItem()}

	actual := pass.NewActivePass(b.CustomerID, b.PassID, b.VariantName, b.PurchaseDate, b.ExpiryDate, items)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, b.TotalQty, actual.Remaining(b.ContentItemID))
}

func TestIsExpired(t *testing.T) {
	b := builder.NewPassBuilder()
	entity := b.BuildDomain()

	assert.False(t, entity.IsExpired(b.ExpiryDate))               // boundary: expiry instant is still valid
	assert.False(t, entity.IsExpired(b.ExpiryDate.Add(-time.Second)))
	assert.True(t, entity.IsExpired(b.ExpiryDate.Add(time.Second)))
}

func TestConsume(t *testing.T) {
	now := time.Now()

	t.Run("decrements the balance", func(t *testing.T) {
		b := builder.NewPassBuilder()
		entity := b.BuildDomain()

		remaining, err := entity.Consume(b.ContentItemID, 3, 0, nil, now)

		require.NoError(t, err)
		assert.Equal(t, 7, remaining)
		assert.Equal(t, 7, entity.Remaining(b.ContentItemID))
	})

	t.Run("draining to zero succeeds", func(t *testing.T) {
		b := builder.NewPassBuilder().With(func(b *builder.PassBuilder) { b.Remaining = 2 })
		entity := b.BuildDomain()

		remaining, err := entity.Consume(b.ContentItemID, 2, 0, nil, now)

		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("over-spend is rejected without mutating state", func(t *testing.T) {
		b := builder.NewPassBuilder().With(func(b *builder.PassBuilder) { b.Remaining = 1 })
		entity := b.BuildDomain()

		_, err := entity.Consume(b.ContentItemID, 2, 0, nil, now)

		assert.ErrorIs(t, err, pass.ErrInsufficientBalance)
		assert.Equal(t, 1, entity.Remaining(b.ContentItemID))
	})

	t.Run("expired pass cannot consume", func(t *testing.T) {
		b := builder.NewPassBuilder().With(func(b *builder.PassBuilder) {
			b.ExpiryDate = now.Add(-24 * time.Hour)
		})
		entity := b.BuildDomain()

		_, err := entity.Consume(b.ContentItemID, 1, 0, nil, now)

		assert.ErrorIs(t, err, pass.ErrExpired)
	})

	t.Run("unknown content item", func(t *testing.T) {
		entity := builder.NewPassBuilder().BuildDomain()

		_, err := entity.Consume(uuid.New(), 1, 0, nil, now)

		assert.ErrorIs(t, err, pass.ErrUnknownContentItem)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		b := builder.NewPassBuilder()
		entity := b.BuildDomain()

		_, err := entity.Consume(b.ContentItemID, 0, 0, nil, now)
		assert.ErrorIs(t, err, pass.ErrNonPositiveQuantity)

		_, err = entity.Consume(b.ContentItemID, -1, 0, nil, now)
		assert.ErrorIs(t, err, pass.ErrNonPositiveQuantity)
	})

	t.Run("monthly cap", func(t *testing.T) {
		monthlyCap := 4

		t.Run("reaching the cap exactly succeeds", func(t *testing.T) {
			b := builder.NewPassBuilder()
			entity := b.BuildDomain()

			_, err := entity.Consume(b.ContentItemID, 2, 2, &monthlyCap, now)

			require.NoError(t, err)
		})

		t.Run("exceeding the cap is rejected", func(t *testing.T) {
			b := builder.NewPassBuilder()
			entity := b.BuildDomain()

			_, err := entity.Consume(b.ContentItemID, 2, 3, &monthlyCap, now)

			assert.ErrorIs(t, err, pass.ErrMonthlyLimitReached)
			assert.Equal(t, b.Remaining, entity.Remaining(b.ContentItemID))
		})

		t.Run("nil cap means uncapped", func(t *testing.T) {
			b := builder.NewPassBuilder()
			entity := b.BuildDomain()

			_, err := entity.Consume(b.ContentItemID, 1, 1000, nil, now)

			require.NoError(t, err)
		})
	})
}

func TestRefund(t *testing.T) {
	t.Run("restores the balance", func(t *testing.T) {
		b := builder.NewPassBuilder().With(func(b *builder.PassBuilder) { b.Remaining = 3 })
		entity := b.BuildDomain()

		remaining, err := entity.Refund(b.ContentItemID, 2)

		require.NoError(t, err)
		assert.Equal(t, 5, remaining)
	})

	t.Run("applies even past expiry", func(t *testing.T) {
		// refunds compensate cancellations and must always apply
		b := builder.NewPassBuilder().With(func(b *builder.PassBuilder) {
			b.ExpiryDate = time.Now().Add(-24 * time.Hour)
			b.Remaining = 0
		})
		entity := b.BuildDomain()

		remaining, err := entity.Refund(b.ContentItemID, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
	})

	t.Run("unknown content item", func(t *testing.T) {
		entity := builder.NewPassBuilder().BuildDomain()

		_, err := entity.Refund(uuid.New(), 1)

		assert.ErrorIs(t, err, pass.ErrUnknownContentItem)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		b := builder.NewPassBuilder()
		entity := b.BuildDomain()

		_, err := entity.Refund(b.ContentItemID, 0)

		assert.ErrorIs(t, err, pass.ErrNonPositiveQuantity)
	})
}

func TestNewMonth(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	for _, s := range valid {
		m, err := pass.NewMonth(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}

	invalid := []string{"", "2024-13", "2024-00", "2024-1", "202401", "2024-01-01"}
	for _, s := range invalid {
		_, err := pass.NewMonth(s)
		assert.ErrorIs(t, err, pass.ErrInvalidMonth, s)
	}
}
