package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/paw-chain/amm/ledger"
)

// Terminal provides a menu-driven interface over a single ledger.
type Terminal struct {
	ledger  *ledger.Ledger
	reader  *bufio.Reader
	account string
}

// NewTerminal creates a terminal operating as the named account.
func NewTerminal(l *ledger.Ledger, account string) *Terminal {
	return &Terminal{
		ledger:  l,
		reader:  bufio.NewReader(os.Stdin),
		account: account,
	}
}

// Run starts the interactive loop.
func (t *Terminal) Run() error {
	t.printWelcome()

	for {
		t.printMainMenu()
		choice := t.readInput("Select option")

		switch choice {
		case "1":
			t.viewPool()
		case "2":
			t.viewAccount()
		case "3":
			if err := t.fundAccount(); err != nil {
				t.printError(err)
			}
		case "4":
			if err := t.deposit(); err != nil {
				t.printError(err)
			}
		case "5":
			if err := t.withdraw(); err != nil {
				t.printError(err)
			}
		case "6":
			if err := t.swap(); err != nil {
				t.printError(err)
			}
		case "7":
			if err := t.priceCalculator(); err != nil {
				t.printError(err)
			}
		case "8":
			t.switchAccount()
		case "9":
			t.printGoodbye()
			return nil
		default:
			fmt.Println("❌ Invalid option. Please try again.")
		}

		fmt.Println("\nPress Enter to continue...")
		t.reader.ReadString('\n')
	}
}

func (t *Terminal) printWelcome() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("        AMM Interactive Pool Terminal")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Operating as: %s\n", t.account)
	fmt.Printf("Fee rate:     %d/1000\n", t.ledger.Params().FeeRate)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

func (t *Terminal) printMainMenu() {
	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                    MAIN MENU                          ║")
	fmt.Println("╠═══════════════════════════════════════════════════════╣")
	fmt.Println("║  1. View Pool                                         ║")
	fmt.Println("║  2. View My Account                                   ║")
	fmt.Println("║  3. Fund Account                                      ║")
	fmt.Println("║  4. Add Liquidity                                     ║")
	fmt.Println("║  5. Remove Liquidity                                  ║")
	fmt.Println("║  6. Execute Swap                                      ║")
	fmt.Println("║  7. Price Calculator                                  ║")
	fmt.Println("║  8. Switch Account                                    ║")
	fmt.Println("║  9. Exit                                              ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()
}

func (t *Terminal) printGoodbye() {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Thank you for using the AMM terminal!")
	fmt.Println(strings.Repeat("=", 60))
}

func (t *Terminal) viewPool() {
	pool := t.ledger.PoolInfo()

	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                    POOL DETAILS                       ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Reserve A:    %d\n", pool.ReserveA)
	fmt.Printf("Reserve B:    %d\n", pool.ReserveB)
	fmt.Printf("Total Shares: %d\n", pool.TotalShares)
	fmt.Printf("Fee Rate:     %d/1000\n", pool.FeeRate)
	fmt.Println()

	if !pool.Active() {
		fmt.Println("Pool is empty. Add liquidity to bootstrap it.")
		return
	}

	priceAtoB := float64(pool.ReserveB) / float64(pool.ReserveA)
	fmt.Println("Current Price:")
	fmt.Printf("  1 A = %.8f B\n", priceAtoB)
	fmt.Printf("  1 B = %.8f A\n", 1.0/priceAtoB)
}

func (t *Terminal) viewAccount() {
	acct := t.ledger.AccountBalance(t.account)

	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                    MY ACCOUNT                         ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Account:   %s\n", t.account)
	fmt.Printf("Balance A: %d\n", acct.BalanceA)
	fmt.Printf("Balance B: %d\n", acct.BalanceB)
	fmt.Printf("Shares:    %d\n", acct.Shares)

	pool := t.ledger.PoolInfo()
	if acct.Shares > 0 && pool.Active() {
		if outA, outB, err := pool.WithdrawAmounts(acct.Shares); err == nil {
			fmt.Println("\nCurrent Value of Shares:")
			fmt.Printf("  A: %d\n", outA)
			fmt.Printf("  B: %d\n", outB)
		}
	}
}

func (t *Terminal) fundAccount() error {
	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                   FUND ACCOUNT                        ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	amountA, err := t.readAmount("Amount A to credit")
	if err != nil {
		return err
	}
	amountB, err := t.readAmount("Amount B to credit")
	if err != nil {
		return err
	}

	t.ledger.FundAccount(t.account, amountA, amountB)

	fmt.Println("✅ Account funded.")
	t.viewAccount()
	return nil
}

func (t *Terminal) deposit() error {
	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                   ADD LIQUIDITY                       ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	pool := t.ledger.PoolInfo()
	if pool.Active() {
		fmt.Printf("Current Ratio: 1 A = %.6f B\n\n",
			float64(pool.ReserveB)/float64(pool.ReserveA))
	} else {
		fmt.Println("Pool is empty; this deposit sets the initial price.")
		fmt.Println()
	}

	amountA, err := t.readAmount("Amount A")
	if err != nil {
		return err
	}

	var amountB uint64
	if pool.Active() {
		// Suggest the proportional amount, allow override.
		suggested, err := pool.SpotBOut(amountA)
		if err != nil {
			return err
		}
		fmt.Printf("\nProportional amount B: %d\n", suggested)

		override := t.readInput("Override B amount? (leave blank to use calculated)")
		if override == "" {
			amountB = suggested
		} else {
			amountB, err = cast.ToUint64E(override)
			if err != nil {
				return fmt.Errorf("invalid amount: %s", override)
			}
		}
	} else {
		amountB, err = t.readAmount("Amount B")
		if err != nil {
			return err
		}
	}

	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Printf("Adding: %d A + %d B\n", amountA, amountB)
	fmt.Println(strings.Repeat("-", 50))

	if !t.confirm() {
		fmt.Println("❌ Operation cancelled.")
		return nil
	}

	shares, err := t.ledger.Deposit(t.account, amountA, amountB)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Liquidity added. Minted %d shares.\n", shares)
	return nil
}

func (t *Terminal) withdraw() error {
	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                  REMOVE LIQUIDITY                     ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	acct := t.ledger.AccountBalance(t.account)
	if acct.Shares == 0 {
		return fmt.Errorf("you have no shares in this pool")
	}

	fmt.Printf("Your Shares: %d\n", acct.Shares)

	input := t.readInput(fmt.Sprintf("\nShares to remove (max: %d, 0 for all)", acct.Shares))
	var share uint64
	if input == "" || input == "0" {
		share = acct.Shares
	} else {
		var err error
		share, err = cast.ToUint64E(input)
		if err != nil {
			return fmt.Errorf("invalid shares: %s", input)
		}
	}

	outA, outB, err := t.ledger.QuoteWithdraw(share)
	if err != nil {
		return err
	}

	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Printf("Removing:  %d shares\n", share)
	fmt.Printf("Receiving: %d A + %d B\n", outA, outB)
	fmt.Println(strings.Repeat("-", 50))

	if !t.confirm() {
		fmt.Println("❌ Operation cancelled.")
		return nil
	}

	outA, outB, err = t.ledger.Withdraw(t.account, share)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Liquidity removed. Received %d A + %d B.\n", outA, outB)
	return nil
}

func (t *Terminal) swap() error {
	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                    EXECUTE SWAP                       ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	direction := t.readInput("Direction (a: A for B, b: B for A)")
	direction = strings.ToLower(direction)
	if direction != "a" && direction != "b" {
		return fmt.Errorf("direction must be 'a' or 'b'")
	}

	amountIn, err := t.readAmount("Amount In")
	if err != nil {
		return err
	}

	var expectedOut uint64
	if direction == "a" {
		expectedOut, err = t.ledger.QuoteSwapAForB(amountIn)
	} else {
		expectedOut, err = t.ledger.QuoteSwapBForA(amountIn)
	}
	if err != nil {
		return fmt.Errorf("quote failed: %w", err)
	}

	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Println("SWAP DETAILS:")
	if direction == "a" {
		fmt.Printf("Input:           %d A\n", amountIn)
		fmt.Printf("Expected Output: %d B\n", expectedOut)
	} else {
		fmt.Printf("Input:           %d B\n", amountIn)
		fmt.Printf("Expected Output: %d A\n", expectedOut)
	}
	fmt.Println(strings.Repeat("-", 50))

	minOutStr := t.readInput("\nMinimum output [default: expected]")
	minOut := expectedOut
	if minOutStr != "" {
		minOut, err = cast.ToUint64E(minOutStr)
		if err != nil {
			return fmt.Errorf("invalid minimum: %s", minOutStr)
		}
	}

	if !t.confirm() {
		fmt.Println("❌ Swap cancelled.")
		return nil
	}

	var out uint64
	if direction == "a" {
		out, err = t.ledger.SwapAForB(t.account, amountIn, minOut)
	} else {
		out, err = t.ledger.SwapBForA(t.account, amountIn, minOut)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✅ Swap executed. Received %d.\n", out)
	return nil
}

func (t *Terminal) priceCalculator() error {
	fmt.Println("\n╔═══════════════════════════════════════════════════════╗")
	fmt.Println("║                  PRICE CALCULATOR                     ║")
	fmt.Println("╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	direction := t.readInput("Quote direction (a: A in, b: B in)")
	direction = strings.ToLower(direction)
	if direction != "a" && direction != "b" {
		return fmt.Errorf("direction must be 'a' or 'b'")
	}

	amountIn, err := t.readAmount("Amount In")
	if err != nil {
		return err
	}

	var spot, effective uint64
	if direction == "a" {
		spot, err = t.ledger.QuoteSpotBOut(amountIn)
		if err != nil {
			return err
		}
		effective, err = t.ledger.QuoteSwapAForB(amountIn)
	} else {
		spot, err = t.ledger.QuoteSpotAOut(amountIn)
		if err != nil {
			return err
		}
		effective, err = t.ledger.QuoteSwapBForA(amountIn)
	}
	if err != nil {
		return err
	}

	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Printf("Spot (no fee, no slippage): %d\n", spot)
	fmt.Printf("Swap quote (fee-aware):     %d\n", effective)
	fmt.Println(strings.Repeat("-", 50))
	return nil
}

func (t *Terminal) switchAccount() {
	name := t.readInput("Account name")
	if name == "" {
		fmt.Println("❌ Account name cannot be empty.")
		return
	}
	t.account = name
	fmt.Printf("✅ Now operating as: %s\n", t.account)
}

func (t *Terminal) readAmount(prompt string) (uint64, error) {
	input := t.readInput(prompt)
	amount, err := cast.ToUint64E(input)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", input)
	}
	return amount, nil
}

func (t *Terminal) confirm() bool {
	answer := strings.ToLower(t.readInput("\nConfirm? (yes/no)"))
	return answer == "yes" || answer == "y"
}

func (t *Terminal) readInput(prompt string) string {
	fmt.Printf("%s: ", prompt)
	input, _ := t.reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func (t *Terminal) printError(err error) {
	fmt.Printf("\n❌ Error: %s\n", err.Error())
}
