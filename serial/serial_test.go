package serial

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyAMA0")
	if cfg.Device != "/dev/ttyAMA0" {
		t.Errorf("device = %q", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("baud = %d, want 115200", cfg.Baud)
	}
	if cfg.ReadTimeout == 0 {
		t.Error("default read timeout must not block the control loop")
	}
}

func TestOpenNilConfig(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("Open(nil) should fail")
	}
}

func TestMockPortReadDrains(t *testing.T) {
	m := &MockPort{ReadData: []byte("A1 500\r")}

	buf := make([]byte, 4)
	n, err := m.Read(buf)
	if err != nil || n != 4 || string(buf[:n]) != "A1 5" {
		t.Fatalf("first read = (%d, %v, %q)", n, err, buf[:n])
	}

	n, err = m.Read(buf)
	if err != nil || n != 3 || string(buf[:n]) != "00\r" {
		t.Fatalf("second read = (%d, %v, %q)", n, err, buf[:n])
	}

	// Drained mock behaves like a timed-out port: zero bytes, no error.
	n, err = m.Read(buf)
	if err != nil || n != 0 {
		t.Fatalf("drained read = (%d, %v)", n, err)
	}
}

func TestMockPortWriteAccumulates(t *testing.T) {
	m := &MockPort{}
	m.Write([]byte("Moves "))
	m.Write([]byte("complete!\r\n"))
	if string(m.WriteData) != "Moves complete!\r\n" {
		t.Errorf("write data = %q", m.WriteData)
	}
}
