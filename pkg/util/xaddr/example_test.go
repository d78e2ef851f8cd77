package xaddr_test

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

func ExampleParseAddress() {
	a, err := xaddr.ParseAddress("2001:0db8:0000:0000:0000:0000:0000:0001", xaddr.V6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a)
	fmt.Println(a.Expanded(false))
	fmt.Println(a.Version())
	// Output:
	// 2001:db8::1
	// 2001:db8:0:0:0:0:0:1
	// IPv6
}

func ExampleAddress_Subnet() {
	a := xaddr.MustParseAddress("192.168.1.77", xaddr.V4)
	s, err := a.Subnet(24)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	fmt.Println(s.Prefix())
	fmt.Println(s.Highest())
	fmt.Println(s.Contains(a))
	// Output:
	// 192.168.1.0/24
	// 192.168.1.0
	// 192.168.1.255
	// true
}

func ExampleSubnet_All() {
	s, _ := xaddr.MustParseAddress("10.0.0.0", xaddr.V4).Subnet(30)
	for a := range s.All() {
		fmt.Println(a)
	}
	// Output:
	// 10.0.0.0
	// 10.0.0.1
	// 10.0.0.2
	// 10.0.0.3
}

func ExampleAddress_Next() {
	max := xaddr.MustParseAddress("255.255.255.255", xaddr.V4)
	fmt.Println(max.Next())
	fmt.Println(max.Next().Prev())
	// Output:
	// 0.0.0.0
	// 255.255.255.255
}
