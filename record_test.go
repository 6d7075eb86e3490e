package teller

import (
	"testing"
)

func TestValidLine(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
		line string
		want bool
	}{
		{"checking account", KindAccount, "5, 1, 50.0, 100", true},
		{"savings account", KindAccount, "3, 0, 200.0, ,Jun 1 2005 01:33PM", true},
		{"account with newline", KindAccount, "5, 1, 50.0, 100\n", true},
		{"empty line", KindAccount, "", false},
		{"comment", KindAccount, "# accounts ledger", false},
		{"account type out of enum", KindAccount, "5, 2, 50.0, 100", false},
		{"account type not numeric", KindAccount, "5, x, 50.0, 100", false},
		{"account bad balance", KindAccount, "5, 1, fifty, 100", false},
		{"savings missing timestamp", KindAccount, "3, 0, 200.0", false},
		{"savings bad timestamp", KindAccount, "3, 0, 200.0, ,yesterday", false},
		{"checking negative credit", KindAccount, "5, 1, 50.0, -10", false},
		{"account too few fields", KindAccount, "5, 1", false},

		{"customer with accounts", KindCustomer, "1, John Smith, 30, hunter, [3-7]", true},
		{"customer no accounts", KindCustomer, "2, Ada, 41, pw, []", true},
		{"customer comment", KindCustomer, "# 1, John, 30, pw, []", false},
		{"customer missing brackets", KindCustomer, "1, John, 30, pw, 3-7", false},
		{"customer double bracket", KindCustomer, "1, John, 30, pw, [[3]]", false},
		{"customer bad age", KindCustomer, "1, John, old, pw, []", false},
		{"customer negative age", KindCustomer, "1, John, -5, pw, []", false},
		{"customer bad id", KindCustomer, "one, John, 30, pw, []", false},
		{"customer wrong comma count", KindCustomer, "1, John, 30, []", false},

		{"deposit row", KindTransaction, "1, 0, 3, 50.0, 3, Jun 1 2005 01:33PM", true},
		{"transfer row", KindTransaction, "9, 2, 3, 12.5, 7, Jan 1 2000 01:00AM", true},
		{"transaction bad kind", KindTransaction, "1, 5, 3, 50.0, 3, Jun 1 2005 01:33PM", false},
		{"transaction bad amount", KindTransaction, "1, 0, 3, much, 3, Jun 1 2005 01:33PM", false},
		{"transaction bad timestamp", KindTransaction, "1, 0, 3, 50.0, 3, soon", false},
		{"transaction wrong comma count", KindTransaction, "1, 0, 3, 50.0, 3", false},
		{"transaction comment", KindTransaction, "# log", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidLine(tc.kind, tc.line); got != tc.want {
				t.Errorf("ValidLine(%v, %q) = %v, want %v", tc.kind, tc.line, got, tc.want)
			}
		})
	}
}

func TestAccountRoundTrip(t *testing.T) {
	accounts := []*Account{
		{ID: 5, Kind: CheckingAccount, Balance: A(-70), CreditLimit: A(100)},
		{ID: 3, Kind: SavingsAccount, Balance: A(200.5), LastTransfer: MustParseTimestamp("Jun 1 2005 01:33PM")},
		NewSavings(9),
		NewChecking(12),
	}
	for _, want := range accounts {
		got, err := ParseAccount(want.Line())
		if err != nil {
			t.Fatalf("ParseAccount(%q): %v", want.Line(), err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip of %q: got %+v, want %+v", want.Line(), got, want)
		}
	}
}

func TestCustomerRoundTrip(t *testing.T) {
	customers := []*Customer{
		{ID: 1, Name: "John Smith", Age: 30, Password: "hunter", AccountIDs: []int{3, 7, 12}},
		{ID: 2, Name: "Ada", Age: 41, Password: "pw"},
	}
	for _, want := range customers {
		got, err := ParseCustomer(want.Line())
		if err != nil {
			t.Fatalf("ParseCustomer(%q): %v", want.Line(), err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip of %q: got %+v, want %+v", want.Line(), got, want)
		}
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	transactions := []Transaction{
		{ID: 1, Kind: TxDeposit, AccountID: 3, Amount: A(50), DestID: 3, Stamp: MustParseTimestamp("Jun 1 2005 01:33PM")},
		{ID: 2, Kind: TxTransfer, AccountID: 3, Amount: A(12.5), DestID: 7, Stamp: MustParseTimestamp("Jan 1 2000 01:00AM")},
	}
	for _, want := range transactions {
		got, err := ParseTransaction(want.Line())
		if err != nil {
			t.Fatalf("ParseTransaction(%q): %v", want.Line(), err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip of %q: got %+v, want %+v", want.Line(), got, want)
		}
	}
}

func TestSerializeIsStable(t *testing.T) {
	// serialize -> parse -> serialize must be the identity on the text.
	line := NewChecking(4).Line()
	acc, err := ParseAccount(line)
	if err != nil {
		t.Fatal(err)
	}
	if again := acc.Line(); again != line {
		t.Errorf("unstable serialization: %q then %q", line, again)
	}
}

func TestLeadingID(t *testing.T) {
	testCases := []struct {
		line   string
		wantID int
		wantOK bool
	}{
		{"5, 1, 50.0, 100", 5, true},
		{"12, John, 30, pw, []", 12, true},
		{"# comment", 0, false},
		{"", 0, false},
		{"x, 1, 50.0, 100", 0, false},
	}
	for _, tc := range testCases {
		id, ok := LeadingID(tc.line)
		if id != tc.wantID || ok != tc.wantOK {
			t.Errorf("LeadingID(%q) = (%d, %v), want (%d, %v)", tc.line, id, ok, tc.wantID, tc.wantOK)
		}
	}
}
