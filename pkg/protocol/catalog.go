package protocol

const (
	typeBit  = "std_logic"
	typeAddr = "std_logic_vector({addr_msb} downto 0)"
	typeData = "std_logic_vector({data_msb} downto 0)"
	typeStrb = "std_logic_vector({strb_msb} downto 0)"
	typeProt = "std_logic_vector(2 downto 0)"
	typeResp = "std_logic_vector(1 downto 0)"
)

func port(proto, function string, dir Direction, typ, desc string) Port {
	return Port{
		Function:    function,
		Direction:   dir,
		Type:        typ,
		Description: desc,
		NameKey:     "port_" + proto + "_" + function,
	}
}

var catalog = map[Protocol][]Port{
	SBI: {
		port("sbi", "clk", In, typeBit, "Clock"),
		port("sbi", "rst", In, typeBit, "Synchronous reset, active high"),
		port("sbi", "cs", In, typeBit, "Chip select"),
		port("sbi", "addr", In, typeAddr, "Byte address"),
		port("sbi", "wr", In, typeBit, "Write strobe"),
		port("sbi", "rd", In, typeBit, "Read strobe"),
		port("sbi", "wdata", In, typeData, "Write data"),
		port("sbi", "rdata", Out, typeData, "Read data"),
		port("sbi", "rdy", Out, typeBit, "Transfer complete"),
	},
	APB3: {
		port("apb3", "pclk", In, typeBit, "Clock"),
		port("apb3", "presetn", In, typeBit, "Reset, active low"),
		port("apb3", "paddr", In, typeAddr, "Address"),
		port("apb3", "psel", In, typeBit, "Select"),
		port("apb3", "penable", In, typeBit, "Enable, marks the access phase"),
		port("apb3", "pwrite", In, typeBit, "Direction, high for writes"),
		port("apb3", "pwdata", In, typeData, "Write data"),
		port("apb3", "prdata", Out, typeData, "Read data"),
		port("apb3", "pready", Out, typeBit, "Ready, extends the transfer while low"),
		port("apb3", "pslverr", Out, typeBit, "Transfer error"),
	},
	AvalonMM: {
		port("avalonmm", "clk", In, typeBit, "Clock"),
		port("avalonmm", "reset", In, typeBit, "Reset, active high"),
		port("avalonmm", "address", In, typeAddr, "Address"),
		port("avalonmm", "read", In, typeBit, "Read request"),
		port("avalonmm", "readdata", Out, typeData, "Read data"),
		port("avalonmm", "write", In, typeBit, "Write request"),
		port("avalonmm", "writedata", In, typeData, "Write data"),
		port("avalonmm", "byteenable", In, typeStrb, "Byte enables"),
		port("avalonmm", "waitrequest", Out, typeBit, "Stalls the host while high"),
		port("avalonmm", "readdatavalid", Out, typeBit, "Read data valid"),
	},
	AXI4Light: {
		port("axi4light", "aclk", In, typeBit, "Global clock"),
		port("axi4light", "aresetn", In, typeBit, "Global reset, active low"),
		port("axi4light", "awaddr", In, typeAddr, "Write address"),
		port("axi4light", "awprot", In, typeProt, "Write protection type"),
		port("axi4light", "awvalid", In, typeBit, "Write address valid"),
		port("axi4light", "awready", Out, typeBit, "Write address ready"),
		port("axi4light", "wdata", In, typeData, "Write data"),
		port("axi4light", "wstrb", In, typeStrb, "Write strobes"),
		port("axi4light", "wvalid", In, typeBit, "Write valid"),
		port("axi4light", "wready", Out, typeBit, "Write ready"),
		port("axi4light", "bresp", Out, typeResp, "Write response"),
		port("axi4light", "bvalid", Out, typeBit, "Write response valid"),
		port("axi4light", "bready", In, typeBit, "Response ready"),
		port("axi4light", "araddr", In, typeAddr, "Read address"),
		port("axi4light", "arprot", In, typeProt, "Read protection type"),
		port("axi4light", "arvalid", In, typeBit, "Read address valid"),
		port("axi4light", "arready", Out, typeBit, "Read address ready"),
		port("axi4light", "rdata", Out, typeData, "Read data"),
		port("axi4light", "rresp", Out, typeResp, "Read response"),
		port("axi4light", "rvalid", Out, typeBit, "Read valid"),
		port("axi4light", "rready", In, typeBit, "Read ready"),
	},
}
