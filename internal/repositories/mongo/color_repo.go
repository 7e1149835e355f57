package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ColorRepository looks up culturally specific color descriptions.
// Descriptions is keyed by locale label (e.g. "日本") and the palette's
// color names; keys in the result carry the trailing "色" stripped, matching
// how the documents are stored.
type ColorRepository interface {
	Descriptions(ctx context.Context, locale string, colors []string) (map[string][]string, error)
}

type colorDoc struct {
	Color        string   `bson:"color"`
	Descriptions []string `bson:"descriptions"`
}

type colorRepo struct {
	db *mongo.Database
}

// NewColorRepo reads from one collection per locale label, each holding
// {color, descriptions} documents.
func NewColorRepo(db *mongo.Database) ColorRepository {
	return &colorRepo{db: db}
}

func (r *colorRepo) Descriptions(ctx context.Context, locale string, colors []string) (map[string][]string, error) {
	cur, err := r.db.Collection(locale).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []colorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make(map[string][]string)
	for _, color := range colors {
		// "紅色" and "紅" address the same document.
		key := strings.ReplaceAll(color, "色", "")
		for _, doc := range docs {
			if doc.Color == key {
				out[key] = doc.Descriptions
				break
			}
		}
	}
	return out, nil
}
