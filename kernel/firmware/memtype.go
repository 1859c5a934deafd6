package firmware

// MemoryType identifies the class of a physical memory region. The numeric
// values match the platform firmware memory type codes so descriptors can be
// exported verbatim.
type MemoryType uint32

const (
	// MemReserved indicates memory that is not available for use.
	MemReserved MemoryType = iota

	// MemLoaderCode and MemLoaderData describe the loader's own image and
	// its scratch allocations.
	MemLoaderCode
	MemLoaderData

	// MemBootServicesCode and MemBootServicesData describe memory owned
	// by the firmware boot services.
	MemBootServicesCode
	MemBootServicesData

	// MemRuntimeServicesCode and MemRuntimeServicesData describe memory
	// that must be preserved after the loaded kernel takes over.
	MemRuntimeServicesCode
	MemRuntimeServicesData

	// MemConventional indicates general purpose memory that is free for use.
	MemConventional

	// MemUnusable indicates memory where errors have been detected.
	MemUnusable

	// MemACPIReclaim and MemACPINvs hold ACPI tables and firmware state.
	MemACPIReclaim
	MemACPINvs
)

// MemKernelImage is the class used for the kernel image reservation. It is
// deliberately distinct from MemLoaderData so that later boot-time
// allocations can never be placed on top of the loaded kernel.
const MemKernelImage MemoryType = 0x80000000

// String implements fmt.Stringer for MemoryType.
func (t MemoryType) String() string {
	switch t {
	case MemReserved:
		return "Reserved"
	case MemLoaderCode:
		return "LoaderCode"
	case MemLoaderData:
		return "LoaderData"
	case MemBootServicesCode:
		return "BootServicesCode"
	case MemBootServicesData:
		return "BootServicesData"
	case MemRuntimeServicesCode:
		return "RuntimeServicesCode"
	case MemRuntimeServicesData:
		return "RuntimeServicesData"
	case MemConventional:
		return "Conventional"
	case MemUnusable:
		return "Unusable"
	case MemACPIReclaim:
		return "ACPIReclaim"
	case MemACPINvs:
		return "ACPINvs"
	case MemKernelImage:
		return "KernelImage"
	default:
		return "unknown"
	}
}
