package xmac

import "testing"

func TestIsNil(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want bool
	}{
		{"zero_value", Addr{}, true},
		{"parsed_zero", MustParse("00:00:00:00:00:00"), true},
		{"nonzero", MustParse("00:00:00:00:00:01"), false},
		{"broadcast", Broadcast(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsNil(); got != tt.want {
				t.Errorf("IsNil() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBroadcast(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want bool
	}{
		{"broadcast", MustParse("ff:ff:ff:ff:ff:ff"), true},
		{"broadcast_const", Broadcast(), true},
		{"almost_broadcast", MustParse("ff:ff:ff:ff:ff:fe"), false},
		{"zero", Addr{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsBroadcast(); got != tt.want {
				t.Errorf("IsBroadcast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUnicastMulticast(t *testing.T) {
	tests := []struct {
		name        string
		addr        Addr
		wantUnicast bool
	}{
		{"typical_unicast", MustParse("12:34:56:ab:cd:ef"), true},
		{"ipv4_multicast_prefix", MustParse("01:00:5e:ab:cd:ef"), false},
		{"broadcast_is_multicast", Broadcast(), false},
		{"nil_is_unicast", Addr{}, true},
		{"odd_first_byte", MustParse("ff:00:00:00:00:00"), false},
		{"even_first_byte", MustParse("fe:ff:ff:ff:ff:ff"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsUnicast(); got != tt.wantUnicast {
				t.Errorf("IsUnicast() = %v, want %v", got, tt.wantUnicast)
			}
			// 互斥互补
			if got := tt.addr.IsMulticast(); got != !tt.wantUnicast {
				t.Errorf("IsMulticast() = %v, want %v", got, !tt.wantUnicast)
			}
		})
	}
}

func TestIsUniversalLocal(t *testing.T) {
	tests := []struct {
		name          string
		addr          Addr
		wantUniversal bool
	}{
		{"factory_assigned", MustParse("00:1a:2b:3c:4d:5e"), true},
		{"locally_administered", MustParse("02:00:00:00:00:01"), false},
		{"nil_is_universal", Addr{}, true},
		{"broadcast_is_local", Broadcast(), false},
		{"typical", MustParse("12:34:56:ab:cd:ef"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.IsUniversal(); got != tt.wantUniversal {
				t.Errorf("IsUniversal() = %v, want %v", got, tt.wantUniversal)
			}
			// 互斥互补
			if got := tt.addr.IsLocal(); got != !tt.wantUniversal {
				t.Errorf("IsLocal() = %v, want %v", got, !tt.wantUniversal)
			}
		})
	}
}

func TestPredicateExhaustiveness(t *testing.T) {
	// 遍历首字节全部取值：每个地址恰好是单播或多播之一，
	// 恰好是全球管理或本地管理之一
	for b := 0; b < 256; b++ {
		addr := AddrFrom6([6]byte{byte(b), 0x00, 0x00, 0x00, 0x00, 0x01})

		if addr.IsUnicast() == addr.IsMulticast() {
			t.Errorf("first byte %#02x: IsUnicast == IsMulticast == %v", b, addr.IsUnicast())
		}
		if addr.IsUniversal() == addr.IsLocal() {
			t.Errorf("first byte %#02x: IsUniversal == IsLocal == %v", b, addr.IsUniversal())
		}
	}
}
