// Package console prints run progress for a human operator and holds the
// terminal until they acknowledge it.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Flarenzy/subnetsplit/internal/domain"
)

const banner = "Splits CIDR blocks from a file into /24 subnets using bit arithmetic."

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Banner() {
	fmt.Fprintln(p.out, banner)
}

// Subnets prints "Subnet <n>: <cidr>" for every subnet, numbered from 1.
func (p *Printer) Subnets(subnets []domain.Subnet) {
	for i, subnet := range subnets {
		fmt.Fprintf(p.out, "Subnet %d: %s\n", i+1, subnet)
	}
}

func (p *Printer) Summary(outputFile string) {
	fmt.Fprintf(p.out, "\nResults written to %s!\n", outputFile)
}

func (p *Printer) InputMissing(inputFile string) {
	fmt.Fprintf(p.out, "%s does not exist, failed to open it!\n", inputFile)
}

func (p *Printer) InputEmpty(inputFile string) {
	fmt.Fprintf(p.out, "%s is empty or contains no valid CIDR!\n", inputFile)
}

// WaitForEnter blocks until a line (or EOF) is read from in.
func (p *Printer) WaitForEnter(in io.Reader) error {
	fmt.Fprint(p.out, "\nPress Enter to exit...")
	_, err := bufio.NewReader(in).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}
