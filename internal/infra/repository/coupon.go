package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"cusco-tours/internal/domain/coupon"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/errs"
	"cusco-tours/internal/pkg/pgconv"
)

// PostgresCouponResolver resolves codes against the coupons table instead of
// the built-in catalog. Selected by PRICING_COUPON_SOURCE=postgres.
type PostgresCouponResolver struct {
	db infra.DBTX
}

func NewPostgresCouponResolver(db infra.DBTX) *PostgresCouponResolver {
	return &PostgresCouponResolver{db: db}
}

func (r *PostgresCouponResolver) Resolve(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, coupon.ErrNotFound
	}

	const query = `SELECT code, type, value, description FROM coupons WHERE code = $1`

	var (
		stored, kind, description string
		value                     pgtype.Numeric
	)

	err = r.db.QueryRow(ctx, query, normalized.String()).Scan(&stored, &kind, &value, &description)
	if err != nil {
		kindErr := infra.ClassifyPgErr(err)
		if kindErr == infra.KindNotFound {
			return nil, coupon.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to resolve coupon", err, kindErr)
	}

	valueDec, err := pgconv.DecimalFromNumeric(value)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon value", err)
	}

	var discount coupon.Discount
	switch coupon.DiscountType(kind) {
	case coupon.DiscountPercentage:
		discount, err = coupon.NewPercentageDiscount(valueDec)
	case coupon.DiscountFixed:
		discount, err = coupon.NewFixedDiscount(valueDec)
	default:
		return nil, errs.New("unknown discount type " + kind)
	}
	if err != nil {
		return nil, errs.Wrap(err, "stored coupon has invalid discount")
	}

	c, err := coupon.NewCoupon(stored, discount, description)
	if err != nil {
		return nil, errs.Wrap(err, "stored coupon has invalid code")
	}

	return c, nil
}
