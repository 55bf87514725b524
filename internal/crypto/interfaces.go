package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into self-describing salted hashes and
// checks candidates against them. Hashes carry their own parameters so they
// stay verifiable after the defaults change.
type PasswordHasher interface {
	// Hash derives a fresh random salt and returns the encoded hash
	// "$argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>".
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value is an error; a wrong password is (false, nil).
	Verify(password, encoded string) (bool, error)
}
