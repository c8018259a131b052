package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-api/models"
)

// Static queries use $n placeholders, which both supported drivers accept:
// pgx natively, SQLite via its $-prefixed named parameter form bound in
// order of first appearance.
const (
	createUser = `INSERT INTO users (name, email, age)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, age;`

	getUserByID = `SELECT id, name, email, age
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, name, email, age
    FROM users
    ORDER BY id;`

	deleteUserByID = `DELETE FROM users
    WHERE id = $1;`

	userExistsByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	countUsers = `SELECT COUNT(*) FROM users;`

	insertUser = `INSERT INTO users (name, email, age)
    VALUES ($1, $2, $3);`
)

// buildUpdateUserQuery dynamically builds a partial UPDATE statement for the
// user with the given ID. Only non-nil fields of update produce SET clauses,
// and the statement returns the updated row so callers can scan the canonical
// post-update state in one round trip.
//
// Returns an error when update carries no fields at all; callers are expected
// to handle the empty update before reaching the builder.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	if update.Age != nil {
		builder = builder.Set("age", *update.Age)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, email, age").
		ToSql()
}
