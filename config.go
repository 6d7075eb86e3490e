package teller

// Default file names, kept from the data files this program inherits.
const (
	DefaultCustomersFile    = "customers.txt"
	DefaultAccountsFile     = "accounts.txt"
	DefaultTransactionsFile = "accountsTransactions.txt"
)

// shadowSuffix is appended to each file name in non-destructive mode.
const shadowSuffix = ".debug"

// Config carries the three ledger file paths and the non-destructive
// toggle. It is threaded explicitly through the store and the ledger;
// nothing reads global state.
type Config struct {
	CustomersPath    string
	AccountsPath     string
	TransactionsPath string

	// NonDestructive makes the store work on shadow copies of the three
	// files, so a debugging session never damages the real ledger. The
	// shadows are removed on clean exit.
	NonDestructive bool
}

// DefaultConfig returns the stock file layout in the current directory.
func DefaultConfig() Config {
	return Config{
		CustomersPath:    DefaultCustomersFile,
		AccountsPath:     DefaultAccountsFile,
		TransactionsPath: DefaultTransactionsFile,
	}
}

// paths lists the three configured files.
func (c Config) paths() []string {
	return []string{c.CustomersPath, c.AccountsPath, c.TransactionsPath}
}
