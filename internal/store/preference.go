package store

import (
	"context"

	"github.com/amink/durus/ent"
)

// preferenceRepo implements PreferenceRepo using the ent client.
type preferenceRepo struct {
	client *ent.Client
}

func (r *preferenceRepo) Language(ctx context.Context) (string, error) {
	row, err := r.client.Preference.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", &StorageError{Op: "read preference", Err: err}
	}
	return row.Language, nil
}

func (r *preferenceRepo) SetLanguage(ctx context.Context, code string) error {
	row, err := r.client.Preference.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return &StorageError{Op: "read preference", Err: err}
		}
		_, err = r.client.Preference.Create().SetLanguage(code).Save(ctx)
		if err != nil {
			return &StorageError{Op: "write preference", Err: err}
		}
		return nil
	}
	_, err = row.Update().SetLanguage(code).Save(ctx)
	if err != nil {
		return &StorageError{Op: "write preference", Err: err}
	}
	return nil
}
