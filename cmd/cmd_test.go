package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

// useStore points the commands to a fresh book in a temporary directory and
// captures their output.
func useStore(t *testing.T) (dir string, out *bytes.Buffer) {
	t.Helper()
	dir = filepath.Join(t.TempDir(), "book")
	for name, value := range map[string]string{"store": dir, "currency": "USD", "raw": "true"} {
		old := flag.CommandLine.Lookup(name).Value.String()
		if err := flag.CommandLine.Set(name, value); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { flag.CommandLine.Set(name, old) })
	}
	out = new(bytes.Buffer)
	oldOut := stdout
	stdout = out
	current = &session{}
	t.Cleanup(func() {
		Close()
		current = &session{}
		stdout = oldOut
	})
	return dir, out
}

// reopen forgets the loaded book, so that the next command loads it from the
// store.
func reopen(t *testing.T) {
	t.Helper()
	if err := Close(); err != nil {
		t.Fatal(err)
	}
	current = &session{}
}

// run executes a command with its arguments and returns its output.
func run(t *testing.T, out *bytes.Buffer, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	out.Reset()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f), out.String()
}

// must runs a command that is expected to succeed.
func must(t *testing.T, out *bytes.Buffer, cmd subcommands.Command, args ...string) string {
	t.Helper()
	status, got := run(t, out, cmd, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %v: status %v, output:\n%s", cmd.Name(), args, status, got)
	}
	return got
}

// setupShop registers accounts and two transactions.
func setupShop(t *testing.T, out *bytes.Buffer) {
	t.Helper()
	must(t, out, accountGroup(), "add", "-n", "Cash", "-t", "Asset")
	must(t, out, accountGroup(), "add", "-n", "Sales", "-t", "revenue")
	must(t, out, accountGroup(), "add", "-n", "Rent", "-t", "Expense")
	must(t, out, txGroup(), "add", "-d", "2025-03-01", "-m", "Till", "-dr", "Cash", "-cr", "Sales", "-a", "500")
	must(t, out, txGroup(), "add", "-d", "2025-03-02", "-m", "March rent", "-dr", "Rent", "-cr", "Cash", "-a", "200")
}

func TestLedgerCommands(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)

	reopen(t)
	got := must(t, out, &balanceCmd{})
	for _, want := range []string{"Cash", "$300.00", "-$500.00", "$200.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("balance is missing %q:\n%s", want, got)
		}
	}

	got = must(t, out, txGroup(), "list", "-s", "2025-03-02", "-d", "2025-03-31")
	if !strings.Contains(got, "March rent") || strings.Contains(got, "Till") {
		t.Errorf("tx list -s 2025-03-02:\n%s", got)
	}
	if got := must(t, out, txGroup(), "list", "-head", "1"); !strings.Contains(got, "1 transactions, total $500.00") {
		t.Errorf("tx list -head 1:\n%s", got)
	}
	if status, _ := run(t, out, txGroup(), "list", "-head", "1", "-tail", "1"); status != subcommands.ExitUsageError {
		t.Errorf("tx list -head -tail = %v, want usage error", status)
	}

	if got := must(t, out, accountGroup(), "list"); !strings.Contains(got, "Revenue") {
		t.Errorf("account list:\n%s", got)
	}
}

func TestTxAdd_Invalid(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)

	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"missing description", []string{"add", "-dr", "Cash", "-cr", "Sales", "-a", "5"}, subcommands.ExitUsageError},
		{"unknown account", []string{"add", "-m", "x", "-dr", "Bank", "-cr", "Sales", "-a", "5"}, subcommands.ExitUsageError},
		{"zero amount", []string{"add", "-m", "x", "-dr", "Cash", "-cr", "Sales", "-a", "0"}, subcommands.ExitUsageError},
		{"not an amount", []string{"add", "-m", "x", "-dr", "Cash", "-cr", "Sales", "-a", "ten"}, subcommands.ExitUsageError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status, _ := run(t, out, txGroup(), tt.args...); status != tt.want {
				t.Errorf("status = %v, want %v", status, tt.want)
			}
		})
	}
	if n := current.book.Ledger.Len(); n != 2 {
		t.Errorf("ledger has %d transactions, want 2", n)
	}
}

func TestResetNeedsForce(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)

	if status, _ := run(t, out, txGroup(), "reset"); status != subcommands.ExitUsageError {
		t.Errorf("tx reset without -f = %v", status)
	}
	if got := must(t, out, txGroup(), "reset", "-f"); !strings.Contains(got, "2 transactions removed") {
		t.Errorf("tx reset -f: %s", got)
	}
	must(t, out, accountGroup(), "clear", "-f")

	reopen(t)
	if got := must(t, out, &balanceCmd{}); !strings.Contains(got, "No accounts yet.") {
		t.Errorf("balance after clear:\n%s", got)
	}
}

func TestCashCommands(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)

	if status, _ := run(t, out, cashGroup(), "set", "-a", "-5"); status != subcommands.ExitFailure {
		t.Errorf("cash set -a -5 = %v, want failure", status)
	}
	must(t, out, cashGroup(), "set", "-a", "1000")

	reopen(t)
	got := must(t, out, cashGroup(), "table")
	if !strings.Contains(got, "Cash on Hand: $1,000.00") || !strings.Contains(got, "$800.00") {
		t.Errorf("cash table:\n%s", got)
	}
}

func TestStockCommands(t *testing.T) {
	_, out := useStore(t)

	must(t, out, stockGroup(), "add", "-n", "Bread", "-q", "10", "-p", "1.5")
	if status, _ := run(t, out, stockGroup(), "add", "-n", "Bread", "-q", "1", "-p", "1"); status != subcommands.ExitFailure {
		t.Errorf("duplicate stock add = %v", status)
	}
	if got := must(t, out, stockGroup(), "count", "-n", "Bread", "-q", "12"); !strings.Contains(got, "variance +2") {
		t.Errorf("stock count: %s", got)
	}
	if got := must(t, out, stockGroup(), "close", "-n", "Bread", "-q", "4", "-d", "2025-03-01"); !strings.Contains(got, "consumed 8") {
		t.Errorf("stock close: %s", got)
	}

	reopen(t)
	if got := must(t, out, stockGroup(), "available", "-n", "Bread"); !strings.Contains(got, "Available: 4 units of Bread") {
		t.Errorf("stock available: %s", got)
	}
	if status, _ := run(t, out, stockGroup(), "available", "-n", "Milk"); status != subcommands.ExitFailure {
		t.Errorf("stock available of unknown item = %v", status)
	}
	if got := must(t, out, stockGroup(), "list"); strings.Contains(got, "Working Out") || !strings.Contains(got, "$6.00") {
		t.Errorf("stock list:\n%s", got)
	}
	if got := must(t, out, stockGroup(), "report"); !strings.Contains(got, "### Bread") {
		t.Errorf("stock report:\n%s", got)
	}

	must(t, out, stockGroup(), "reset", "-f")
	if got := must(t, out, stockGroup(), "list"); !strings.Contains(got, "No stock items yet.") {
		t.Errorf("stock list after reset:\n%s", got)
	}
}

func TestShiftCommands(t *testing.T) {
	_, out := useStore(t)

	if got := must(t, out, shiftGroup(), "show"); !strings.Contains(got, "No shift report yet.") {
		t.Errorf("shift show: %s", got)
	}
	if status, _ := run(t, out, shiftGroup(), "generate", "-opening", "abc"); status != subcommands.ExitUsageError {
		t.Errorf("shift generate -opening abc = %v", status)
	}
	must(t, out, shiftGroup(), "generate", "-d", "2025-03-01", "-shift", "Evening", "-e", "Ama",
		"-opening", "100", "-sales", "500", "-payments", "50", "-actual", "540")

	reopen(t)
	got := must(t, out, shiftGroup(), "show")
	for _, want := range []string{"Evening", "Ama", "**$550.00**", "**$10.00**"} {
		if !strings.Contains(got, want) {
			t.Errorf("shift show is missing %q:\n%s", want, got)
		}
	}
}

func TestSalesCommands(t *testing.T) {
	_, out := useStore(t)

	must(t, out, salesGroup(), "add", "-p", "Bread", "-o", "10", "-s", "7", "-price", "1.5")
	must(t, out, salesGroup(), "add", "-p", "Milk", "-o", "5", "-s", "1", "-price", "2")
	if status, _ := run(t, out, salesGroup(), "add", "-p", "Eggs", "-o", "1", "-s", "2", "-price", "1"); status != subcommands.ExitUsageError {
		t.Errorf("oversold sales add = %v", status)
	}
	must(t, out, salesGroup(), "set", "-i", "1", "-p", "Milk", "-o", "5", "-s", "2", "-price", "2")
	if status, _ := run(t, out, salesGroup(), "delete", "-i", "7"); status != subcommands.ExitFailure {
		t.Errorf("sales delete -i 7 = %v", status)
	}

	reopen(t)
	if got := must(t, out, salesGroup(), "list"); !strings.Contains(got, "$14.50") {
		t.Errorf("sales list:\n%s", got)
	}
	if got := must(t, out, salesGroup(), "delete", "-i", "0"); strings.Contains(got, "Bread") {
		t.Errorf("sales delete -i 0:\n%s", got)
	}
}

func TestTxImport(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)

	path := filepath.Join(t.TempDir(), "import.xlsx")
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "transactions"); err != nil {
		t.Fatal(err)
	}
	rows := [][]any{
		{"Date", "Description", "Debit Account", "Credit Account", "Amount"},
		{"2025-03-03", "Till", "Cash", "Sales", 250},
		{"2025-03-03", "Unknown", "Bank", "Sales", 10},
		{"", "No date", "Cash", "Sales", 10},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("transactions", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	got := must(t, out, txGroup(), "import", path)
	if !strings.Contains(got, "Imported 1 transactions, skipped 2 rows.") {
		t.Errorf("tx import:\n%s", got)
	}
	reopen(t)
	if got := must(t, out, txGroup(), "list"); !strings.Contains(got, "3 transactions, total $950.00") {
		t.Errorf("tx list after import:\n%s", got)
	}

	if status, _ := run(t, out, txGroup(), "import"); status != subcommands.ExitUsageError {
		t.Errorf("tx import without file = %v", status)
	}
}

func TestExportCommands(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)
	must(t, out, stockGroup(), "add", "-n", "Bread", "-q", "10", "-p", "1.5")
	dir := t.TempDir()

	if status, _ := run(t, out, exportGroup(), "shift-doc", "-o", filepath.Join(dir, "shift.doc")); status != subcommands.ExitFailure {
		t.Errorf("shift-doc without a shift = %v", status)
	}
	must(t, out, shiftGroup(), "generate", "-opening", "10")

	for _, kind := range []string{"workbook", "stock-xlsx", "stock-pdf", "shift-pdf", "shift-doc", "charts-pdf", "sales-pdf"} {
		path := filepath.Join(dir, kind)
		must(t, out, exportGroup(), kind, "-o", path)
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("export %s: %v", kind, err)
		}
	}

	charts := filepath.Join(dir, "charts")
	must(t, out, exportGroup(), "charts", "-o", charts)
	for _, name := range []string{"all-time.png", "day-2025-03-01.png", "day-2025-03-02.png"} {
		if _, err := os.Stat(filepath.Join(charts, name)); err != nil {
			t.Errorf("missing chart: %v", err)
		}
	}
}

func TestQuery(t *testing.T) {
	_, out := useStore(t)
	setupShop(t, out)

	got := must(t, out, &queryCmd{}, "-c", "$.accounts[*].name")
	if strings.TrimSpace(got) != `["Cash","Sales","Rent"]` {
		t.Errorf("query accounts = %s", got)
	}
	got = must(t, out, &queryCmd{}, "-c", "$.transactions[?(@.amount > 300)].description")
	if strings.TrimSpace(got) != `["Till"]` {
		t.Errorf("query transactions = %s", got)
	}
	if status, _ := run(t, out, &queryCmd{}, "$.accounts["); status != subcommands.ExitFailure {
		t.Errorf("query with invalid expression = %v", status)
	}
	if status, _ := run(t, out, &queryCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("query without expression = %v", status)
	}
}

func TestPersistedFiles(t *testing.T) {
	dir, out := useStore(t)
	setupShop(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "transactions"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"date":"2025-03-01","description":"Till","debitAccount":"Cash","creditAccount":"Sales","amount":500}`
	if first, _, _ := strings.Cut(string(data), "\n"); first != want {
		t.Errorf("transactions file first line = %s, want %s", first, want)
	}
}

func TestMigrateAndFmt(t *testing.T) {
	dir, out := useStore(t)
	setupShop(t, out)

	dst := filepath.Join(t.TempDir(), "copy")
	if status, _ := run(t, out, &migrateCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("migrate without -to = %v", status)
	}
	if status, _ := run(t, out, &migrateCmd{}, "-to", dir); status != subcommands.ExitUsageError {
		t.Errorf("migrate onto itself = %v", status)
	}
	must(t, out, &migrateCmd{}, "-to", dst)

	// The copy is a complete book.
	if err := flag.CommandLine.Set("store", dst); err != nil {
		t.Fatal(err)
	}
	reopen(t)
	if got := must(t, out, &queryCmd{}, "-c", "$.transactions[*].amount"); strings.TrimSpace(got) != "[500,200]" {
		t.Errorf("migrated transactions = %s", got)
	}

	// fmt rewrites a collection written by hand.
	if err := os.WriteFile(filepath.Join(dst, "accounts"), []byte("{\"type\":\"Asset\",\"name\":\"Cash\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	reopen(t)
	must(t, out, &fmtCmd{})
	data, err := os.ReadFile(filepath.Join(dst, "accounts"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "{\"name\":\"Cash\",\"type\":\"Asset\"}\n" {
		t.Errorf("formatted accounts = %q", got)
	}
}

func TestTopic(t *testing.T) {
	_, out := useStore(t)
	if got := must(t, out, &topicCmd{}); !strings.Contains(got, "* stock:") {
		t.Errorf("topic index:\n%s", got)
	}
	if got := must(t, out, &topicCmd{}, "shift"); !strings.Contains(got, "variance = expected - actual cash") {
		t.Errorf("topic shift:\n%s", got)
	}
	if status, _ := run(t, out, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("topic nope = %v", status)
	}
}
