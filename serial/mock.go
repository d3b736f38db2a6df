package serial

// MockPort implements Port for testing.
type MockPort struct {
	ReadData  []byte
	ReadErr   error
	WriteData []byte
	WriteErr  error
	Closed    bool
	Flushed   bool

	// ReadFunc allows custom read behavior for complex tests
	ReadFunc func(p []byte) (int, error)
}

func (m *MockPort) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	// A timed-out serial read reports zero bytes without an error, so a
	// drained mock does the same rather than returning io.EOF.
	return n, nil
}

func (m *MockPort) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.WriteData = append(m.WriteData, p...)
	return len(p), nil
}

func (m *MockPort) Close() error {
	m.Closed = true
	return nil
}

func (m *MockPort) Flush() error {
	m.Flushed = true
	m.ReadData = nil
	return nil
}
