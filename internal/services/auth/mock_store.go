package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[string]string
	err    error
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

// FailWith makes every subsequent call return err, simulating a locked or
// unavailable keychain.
func (m *MockStore) FailWith(err error) {
	m.err = err
}

func (m *MockStore) SetToken(key string, token string) error {
	if m.err != nil {
		return m.err
	}
	m.tokens[NormalizeKey(key)] = token
	return nil
}

func (m *MockStore) GetToken(key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	token, ok := m.tokens[NormalizeKey(key)]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(key string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tokens[NormalizeKey(key)]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, NormalizeKey(key))
	return nil
}
