package models

import "testing"

func TestNetPay(t *testing.T) {
	entry := PayrollEntry{
		BaseSalary:  12000,
		Commissions: 3500,
		Bonuses:     1000,
		Deductions:  500,
	}

	if got := entry.NetPay(); got != 16000 {
		t.Errorf("NetPay = %v, muốn 16000 (lương + hoa hồng + thưởng - khấu trừ)", got)
	}
}

func TestNetPay_ZeroEntry(t *testing.T) {
	var entry PayrollEntry
	if got := entry.NetPay(); got != 0 {
		t.Errorf("NetPay của bảng lương rỗng = %v, muốn 0", got)
	}
}
