// modulio-host is an interactive shell for driving a ModulIO board over
// a serial port.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"
	"github.com/google/shlex"

	"modulio/host/modulio"
	"modulio/host/serial"
)

var (
	device     = flag.String("device", "", "Serial device path to connect at startup")
	baud       = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	configPath = flag.String("config", "", "YAML session file to connect from")
	evalExpr   = flag.String("e", "", "Evaluate one command line and exit")
)

const clientKey = "$client"

const (
	unconnectedPrompt = "[none] > "
	connectedPrompt   = "modulio > "
)

// activeClient mirrors the shell's client entry so the deferred close in
// main sees connections made by the connect command.
var activeClient *modulio.Client

func main() {
	flag.Parse()

	shell := ishell.New()
	shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		shell.AddCmd(cmd)
	}

	switch {
	case *configPath != "":
		cfg, err := modulio.LoadSessionConfig(*configPath)
		if err != nil {
			log.Fatalln(err)
		}
		client, err := modulio.ConnectSession(cfg)
		if err != nil {
			log.Fatalln(err)
		}
		setClient(shell, client)
	case *device != "":
		client := modulio.NewClient()
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		if err := client.ConnectWithConfig(cfg); err != nil {
			log.Fatalln(err)
		}
		setClient(shell, client)
	}
	defer closeClient()

	if *evalExpr != "" {
		args, err := shlex.Split(*evalExpr)
		if err != nil {
			log.Fatalln(err)
		}
		if err := shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}

	shell.Println("ModulIO host shell (type 'help' for commands)")
	shell.Run()
}

func setClient(shell *ishell.Shell, client *modulio.Client) {
	activeClient = client
	shell.Set(clientKey, client)
	shell.SetPrompt(connectedPrompt)
}

func closeClient() {
	if activeClient != nil {
		activeClient.Close()
	}
}

func clientFrom(c *ishell.Context) *modulio.Client {
	client, _ := c.Get(clientKey).(*modulio.Client)
	return client
}

// mustBeConnected wraps a command func that requires a connection.
func mustBeConnected(fn func(c *ishell.Context, client *modulio.Client)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		client := clientFrom(c)
		if client == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c, client)
	}
}

var commands = []*ishell.Cmd{
	{
		Name: "connect",
		Help: "DEVICE [BAUD]",
		Func: func(c *ishell.Context) {
			if clientFrom(c) != nil {
				c.Err(fmt.Errorf("already connected"))
				return
			}
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("usage: connect DEVICE [BAUD]"))
				return
			}
			cfg := serial.DefaultConfig(c.Args[0])
			if len(c.Args) >= 2 {
				b, err := strconv.Atoi(c.Args[1])
				if err != nil {
					c.Err(fmt.Errorf("bad baud rate %q", c.Args[1]))
					return
				}
				cfg.Baud = b
			}
			client := modulio.NewClient()
			c.Println("Connecting (waiting for board reset)...")
			if err := client.ConnectWithConfig(cfg); err != nil {
				c.Err(err)
				return
			}
			activeClient = client
			c.Set(clientKey, client)
			c.SetPrompt(connectedPrompt)
		},
	},
	{
		Name: "disconnect",
		Help: "",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if err := client.Close(); err != nil {
				c.Err(err)
			}
			activeClient = nil
			c.Set(clientKey, nil)
			c.SetPrompt(unconnectedPrompt)
		}),
	},
	{
		Name: "setup",
		Help: "KIND NAME PIN [PIN]  (kinds: button, led, motor, pressure)",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("usage: setup KIND NAME PIN [PIN]"))
				return
			}
			kind, err := modulio.KindFromString(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			pins := make([]int, 0, len(c.Args)-2)
			for _, a := range c.Args[2:] {
				p, err := strconv.Atoi(a)
				if err != nil {
					c.Err(fmt.Errorf("bad pin %q", a))
					return
				}
				pins = append(pins, p)
			}
			d, err := client.CreateDevice(kind, c.Args[1], pins...)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("created %s at index %d\n", d.Name(), d.Index())
		}),
	},
	{
		Name: "remove",
		Help: "NAME",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: remove NAME"))
				return
			}
			if err := client.RemoveDevice(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
			c.Println("removed")
		}),
	},
	{
		Name: "list",
		Help: "",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			devices := client.Devices()
			if len(devices) == 0 {
				c.Println("no devices")
				return
			}
			for _, d := range devices {
				c.Printf("%d %c %s pins=%v value=%q\n",
					d.Index(), byte(d.Kind()), d.Name(), d.Pins(), d.Value())
			}
		}),
	},
	{
		Name: "set",
		Help: "NAME VALUE",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("usage: set NAME VALUE"))
				return
			}
			d := client.Device(c.Args[0])
			if d == nil {
				c.Err(fmt.Errorf("no device named %q", c.Args[0]))
				return
			}
			if err := d.Set(c.Args[1]); err != nil {
				c.Err(err)
			}
		}),
	},
	{
		Name: "get",
		Help: "NAME",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: get NAME"))
				return
			}
			d := client.Device(c.Args[0])
			if d == nil {
				c.Err(fmt.Errorf("no device named %q", c.Args[0]))
				return
			}
			c.Println(d.Value())
		}),
	},
	{
		Name: "stream",
		Help: "on|off",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: stream on|off"))
				return
			}
			var err error
			switch c.Args[0] {
			case "on":
				err = client.EnableStream()
			case "off":
				err = client.DisableStream()
			default:
				err = fmt.Errorf("usage: stream on|off")
			}
			if err != nil {
				c.Err(err)
			}
		}),
	},
	{
		Name: "period",
		Help: "MILLISECONDS",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: period MILLISECONDS"))
				return
			}
			ms, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("bad period %q", c.Args[0]))
				return
			}
			if err := client.SetStreamPeriod(ms); err != nil {
				c.Err(err)
			}
		}),
	},
	{
		Name: "record",
		Help: "FILE | stop",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: record FILE | record stop"))
				return
			}
			if c.Args[0] == "stop" {
				if err := client.StopRecording(); err != nil {
					c.Err(err)
				}
				return
			}
			if err := client.StartRecording(c.Args[0]); err != nil {
				c.Err(err)
				return
			}
			c.Printf("recording to %s\n", c.Args[0])
		}),
	},
	{
		Name: "mode",
		Help: "auto|interactive",
		Func: mustBeConnected(func(c *ishell.Context, client *modulio.Client) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: mode auto|interactive"))
				return
			}
			var err error
			switch c.Args[0] {
			case "auto":
				err = client.SetAutomated(true)
			case "interactive":
				err = client.SetAutomated(false)
			default:
				err = fmt.Errorf("usage: mode auto|interactive")
			}
			if err != nil {
				c.Err(err)
			}
		}),
	},
}
