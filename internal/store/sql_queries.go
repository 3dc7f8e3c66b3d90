package store

const (
	createUser = `INSERT INTO users (email, name)
    VALUES ($1, $2)
    RETURNING user_id, email, name, created_at;`

	findUserByEmail = `SELECT user_id, email, name, created_at
    FROM users
    WHERE email = $1;`
)
