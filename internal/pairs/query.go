package pairs

import "fmt"

// QueryDescriptor couples a SQL statement with its argument builder. The
// adapter never assembles SQL for a specific pair, it only picks a
// descriptor and supplies the pair.
type QueryDescriptor struct {
	SQL  string
	Args func(Pair) []any
}

// QueryShapes bundles the two pair query flavours: Direct serves pairs with
// the reference asset on either leg, Triangulated additionally resolves the
// auxiliary average price linking the pair's price asset to the reference
// asset.
type QueryShapes struct {
	Direct       QueryDescriptor
	Triangulated QueryDescriptor
}

// SelectQuery picks the query shape for a pair. Pure selection, no side
// effects: the direct shape needs no auxiliary lookup when the reference
// asset already is one of the two legs.
func SelectQuery(shapes QueryShapes, referenceAsset string, pair Pair) QueryDescriptor {
	if pair.Contains(referenceAsset) {
		return shapes.Direct
	}
	return shapes.Triangulated
}

// Both statements project the same eight columns so a single row type scans
// either result; the direct shape returns null triangulation columns.
const (
	directQueryTmpl = `
SELECT
    a.decimals            AS a_decimals,
    p.decimals            AS p_decimals,
    pr.first_price,
    pr.last_price,
    pr.volume,
    pr.volume_price_asset,
    NULL::numeric         AS avg_price_with_amur,
    NULL::text            AS price_asset_with_amur
FROM %[1]s.pairs pr
JOIN %[1]s.assets a ON a.asset_id = pr.amount_asset_id
JOIN %[1]s.assets p ON p.asset_id = pr.price_asset_id
WHERE pr.amount_asset_id = $1
  AND pr.price_asset_id = $2`

	triangulatedQueryTmpl = `
SELECT
    a.decimals            AS a_decimals,
    p.decimals            AS p_decimals,
    pr.first_price,
    pr.last_price,
    pr.volume,
    pr.volume_price_asset,
    ref.avg_price         AS avg_price_with_amur,
    ref.price_asset_id    AS price_asset_with_amur
FROM %[1]s.pairs pr
JOIN %[1]s.assets a ON a.asset_id = pr.amount_asset_id
JOIN %[1]s.assets p ON p.asset_id = pr.price_asset_id
LEFT JOIN LATERAL (
    SELECT x.avg_price, x.price_asset_id
    FROM %[1]s.pairs x
    WHERE (x.amount_asset_id = pr.price_asset_id AND x.price_asset_id = $3)
       OR (x.amount_asset_id = $3 AND x.price_asset_id = pr.price_asset_id)
    LIMIT 1
) ref ON TRUE
WHERE pr.amount_asset_id = $1
  AND pr.price_asset_id = $2`
)

// NewQueryShapes builds the descriptors for the configured schema and
// reference asset.
func NewQueryShapes(cfg *Config) QueryShapes {
	reference := cfg.ReferenceAsset
	return QueryShapes{
		Direct: QueryDescriptor{
			SQL: fmt.Sprintf(directQueryTmpl, cfg.Schema),
			Args: func(p Pair) []any {
				return []any{p.AmountAsset, p.PriceAsset}
			},
		},
		Triangulated: QueryDescriptor{
			SQL: fmt.Sprintf(triangulatedQueryTmpl, cfg.Schema),
			Args: func(p Pair) []any {
				return []any{p.AmountAsset, p.PriceAsset, reference}
			},
		},
	}
}
