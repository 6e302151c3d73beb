package gpg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Colon listing record types and field positions (gpg DETAILS format).
const (
	recordSecretKey = "sec"
	recordUserID    = "uid"

	fieldKeyID  = 4
	fieldUserID = 9
)

// Identity is a secret key usable as a vault recipient.
type Identity struct {
	ID   string
	Name string
}

func (i Identity) String() string {
	if i.Name == "" {
		return i.ID
	}
	return fmt.Sprintf("%s (%s)", i.Name, i.ID)
}

type parserState int

const (
	beforeFirstRecord parserState = iota
	accumulatingRecord
	skippingRecord
)

// keyParser turns colon listing lines into identities.
type keyParser struct {
	state   parserState
	current Identity
	names   []string
	out     []Identity
}

func (p *keyParser) flush() {
	if p.state == accumulatingRecord {
		p.current.Name = strings.Join(p.names, ", ")
		p.out = append(p.out, p.current)
	}
	p.current = Identity{}
	p.names = nil
}

func (p *keyParser) line(line string) {
	fields := strings.Split(line, ":")

	switch fields[0] {
	case recordSecretKey:
		p.flush()
		if len(fields) <= fieldKeyID || fields[fieldKeyID] == "" {
			p.state = skippingRecord
			return
		}
		p.current.ID = fields[fieldKeyID]
		p.state = accumulatingRecord

	case recordUserID:
		if p.state != accumulatingRecord || len(fields) <= fieldUserID {
			return
		}
		if name := unescape(fields[fieldUserID]); name != "" {
			p.names = append(p.names, name)
		}
	}
}

func (p *keyParser) finish() []Identity {
	p.flush()
	p.state = beforeFirstRecord
	return p.out
}

// ParseKeyListing parses `gpg --list-secret-keys --with-colons` output.
// A sec record starts a new identity; following uid records add to its name.
// Records missing their expected field are dropped, never fatal. Lines of
// any length are read whole.
func ParseKeyListing(r io.Reader) []Identity {
	p := &keyParser{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			p.line(strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			break
		}
	}
	return p.finish()
}

// unescape decodes the \xNN escapes gpg uses for colons and control bytes in user ids.
func unescape(s string) string {
	if !strings.Contains(s, `\x`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
