package db

import (
	"fmt"

	"github.com/silh/garcombot/pkg/logger"
	"github.com/xujiajun/nutsdb"
)

var log = logger.Logger()

// Open opens (or creates) the nutsdb database stored in dir.
func Open(dir string) (*nutsdb.DB, error) {
	opt := nutsdb.DefaultOptions
	opt.Dir = dir
	db, err := nutsdb.Open(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB in %s: %w", dir, err)
	}
	log.Infow("Opened DB", "dir", dir)
	return db, nil
}
