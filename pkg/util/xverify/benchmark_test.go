package xverify

import "testing"

// =============================================================================
// 校验基准测试
// =============================================================================

func BenchmarkVerify(b *testing.B) {
	b.Run("v4 plain", func(b *testing.B) {
		for b.Loop() {
			_ = Verify("192.168.1.1", CIDRAllow)
		}
	})
	b.Run("v4 cidr canonical", func(b *testing.B) {
		for b.Loop() {
			_ = Verify("192.168.1.0/24", CIDRAllow)
		}
	})
	b.Run("v4 cidr corrected", func(b *testing.B) {
		for b.Loop() {
			_ = Verify("192.168.1.1/24", CIDRAllow)
		}
	})
	b.Run("v6 auto-detect", func(b *testing.B) {
		for b.Loop() {
			_ = Verify("2001:db8::1", CIDRAllow)
		}
	})
	b.Run("invalid", func(b *testing.B) {
		for b.Loop() {
			_ = Verify("300.1.1.1", CIDRAllow)
		}
	})
}

func BenchmarkPrettify(b *testing.B) {
	for b.Loop() {
		_, _ = Prettify("2001:0db8:0000:0000:0000:0000:0000:0001", false)
	}
}
