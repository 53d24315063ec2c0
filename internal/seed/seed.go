package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Slug  string
	Title string
}

// Defaults are the categories a fresh installation starts with.
var Defaults = []categorySeed{
	{Slug: "html", Title: "HTML"},
	{Slug: "css", Title: "CSS"},
	{Slug: "js", Title: "JavaScript"},
	{Slug: "react", Title: "React"},
	{Slug: "vue", Title: "Vue"},
	{Slug: "svelte", Title: "Svelte"},
	{Slug: "angular", Title: "Angular"},
	{Slug: "node", Title: "Node"},
	{Slug: "deno", Title: "Deno"},
	{Slug: "typescript", Title: "TypeScript"},
}

// Apply inserts the default categories. It is idempotent via ON CONFLICT and
// returns how many rows were actually inserted.
func Apply(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	const q = `
INSERT INTO categories (slug, title)
VALUES ($1, $2)
ON CONFLICT (slug) DO NOTHING
`
	inserted := 0
	for _, c := range Defaults {
		tag, err := pool.Exec(ctx, q, c.Slug, c.Title)
		if err != nil {
			return inserted, fmt.Errorf("insert category %s: %w", c.Slug, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
